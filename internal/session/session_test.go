package session

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"donor", RoleDonor, false},
		{"Receiver", RoleReceiver, false},
		{"  NGO ", RoleNGO, false},
		{"admin", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestProfileFor_PureFunctionOfRole(t *testing.T) {
	for _, role := range Roles() {
		first := ProfileFor(role)
		second := ProfileFor(role)
		if first != second {
			t.Errorf("ProfileFor(%s) not deterministic: %+v vs %+v", role, first, second)
		}
		if first.Role != role {
			t.Errorf("ProfileFor(%s).Role = %s", role, first.Role)
		}
		if first.Name == "" || first.Contact == "" {
			t.Errorf("ProfileFor(%s) has empty fields: %+v", role, first)
		}
	}
}

func TestRoleLabels(t *testing.T) {
	if got := RoleNGO.Label(); got != "NGO" {
		t.Errorf("RoleNGO.Label() = %q, want NGO", got)
	}
	if got := RoleDonor.String(); got != "donor" {
		t.Errorf("RoleDonor.String() = %q, want donor", got)
	}
}
