package memory

import (
	"errors"
	"testing"
)

type target struct {
	Key string
	Val int
}

func TestSet(t *testing.T) {
	type args struct {
		key string
		val *target
	}
	ms := NewMemStorage()
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "default",
			args: args{key: "key1", val: &target{Key: "key1", Val: 1}},
		}, {
			name:    "duplicate records",
			args:    args{key: "key1", val: &target{Key: "key1", Val: 2}},
			wantErr: ErrDuplicateKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, ms)
			if err != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: Set() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			got, getErr := Get[target](t.Context(), tt.args.key, ms)
			if getErr != nil {
				t.Fatalf("%s: Get() error = %+v", tt.name, getErr)
			}
			if got.Val != tt.args.val.Val {
				t.Errorf("%s: Get() = %+v, want %+v", tt.name, got, tt.args.val)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ms := NewMemStorage()

	if err := Update[target](t.Context(), "absent", &target{}, ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() on absent key error = %+v, want ErrNotFound", err)
	}

	if err := Set[target](t.Context(), "key1", &target{Key: "key1", Val: 1}, ms); err != nil {
		t.Fatalf("Set() error = %+v", err)
	}
	if err := Update[target](t.Context(), "key1", &target{Key: "key1", Val: 2}, ms); err != nil {
		t.Fatalf("Update() error = %+v", err)
	}

	got, err := Get[target](t.Context(), "key1", ms)
	if err != nil {
		t.Fatalf("Get() error = %+v", err)
	}
	if got.Val != 2 {
		t.Errorf("Get() after Update() = %+v, want Val 2", got)
	}
}

func TestDelete(t *testing.T) {
	ms := NewMemStorage()

	if err := Set[target](t.Context(), "key1", &target{Key: "key1", Val: 1}, ms); err != nil {
		t.Fatalf("Set() error = %+v", err)
	}
	if err := Delete(t.Context(), "key1", ms); err != nil {
		t.Errorf("Delete() error = %+v", err)
	}
	// повторное удаление того же ключа
	if err := Delete(t.Context(), "key1", ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %+v, want ErrNotFound", err)
	}
	if _, err := Get[target](t.Context(), "key1", ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %+v, want ErrNotFound", err)
	}
}

func TestFilterAll(t *testing.T) {
	ms := NewMemStorage()
	for _, tg := range []target{
		{Key: "a", Val: 1},
		{Key: "b", Val: 2},
		{Key: "c", Val: 2},
	} {
		if err := Set[target](t.Context(), tg.Key, &tg, ms); err != nil {
			t.Fatalf("Set() error = %+v", err)
		}
	}

	got, err := FilterAll[target](t.Context(), ms, func(val target) bool { return val.Val == 2 })
	if err != nil {
		t.Fatalf("FilterAll() error = %+v", err)
	}
	if len(got) != 2 {
		t.Errorf("FilterAll() returned %d records, want 2", len(got))
	}
}
