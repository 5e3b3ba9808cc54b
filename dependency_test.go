package mvvm

import "testing"

func TestDependencies_Add(t *testing.T) {
	type tc struct {
		build func() *Dependencies
		prop  string
		want  []string
	}

	tests := map[string]tc{
		"single dependent": {
			build: func() *Dependencies {
				return NewDependencies().Add("First", "Derived")
			},
			prop: "First",
			want: []string{"Derived"},
		},
		"accumulates across calls": {
			build: func() *Dependencies {
				return NewDependencies().
					Add("First", "Derived").
					Add("First", "Display")
			},
			prop: "First",
			want: []string{"Derived", "Display"},
		},
		"duplicate kept once at first position": {
			build: func() *Dependencies {
				return NewDependencies().
					Add("First", "Derived", "Display").
					Add("First", "Derived")
			},
			prop: "First",
			want: []string{"Derived", "Display"},
		},
		"undeclared property has no dependents": {
			build: func() *Dependencies {
				return NewDependencies().Add("First", "Derived")
			},
			prop: "Other",
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.build().Dependents(tt.prop)
			if len(got) != len(tt.want) {
				t.Fatalf("Dependents(%q) = %v, want %v", tt.prop, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Dependents(%q) = %v, want %v", tt.prop, got, tt.want)
					break
				}
			}
		})
	}
}

func TestDependencies_NilTable(t *testing.T) {
	var d *Dependencies
	if got := d.Dependents("First"); got != nil {
		t.Errorf("nil table Dependents() = %v, want nil", got)
	}
}
