package dependencyservice

import "testing"

func TestDetectManagerPriority(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    PackageManager
	}{
		{"apt wins over everything", []string{"pkg", "pacman", "apt"}, Apt},
		{"apt-get before dnf", []string{"dnf", "apt-get"}, AptGet},
		{"dnf before yum", []string{"yum", "dnf"}, Dnf},
		{"pacman alone", []string{"pacman"}, Pacman},
		{"zypper before pkg", []string{"pkg", "zypper"}, Zypper},
		{"pkg alone", []string{"pkg"}, Pkg},
		{"nothing found", nil, None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			present := map[string]bool{}
			for _, p := range tc.present {
				present[p] = true
			}

			got := DetectManager(func(bin string) bool { return present[bin] })
			if got != tc.want {
				t.Fatalf("DetectManager = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestDetectManagerDeterministic(t *testing.T) {
	all := func(string) bool { return true }

	for i := 0; i < 5; i++ {
		if got := DetectManager(all); got != Apt {
			t.Fatalf("DetectManager with all managers present = %q; want apt", got)
		}
	}
}
