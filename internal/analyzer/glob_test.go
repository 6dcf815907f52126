package analyzer

import "testing"

func TestMatchesGlob(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		include []string
		exclude []string
		want    bool
	}{
		{
			name:    "service under src",
			path:    "src/users/users.service.ts",
			include: []string{"src/**/*.service.ts"},
			want:    true,
		},
		{
			name:    "service directly in src",
			path:    "src/app.service.ts",
			include: []string{"src/**/*.service.ts"},
			want:    true,
		},
		{
			name:    "controller does not match service pattern",
			path:    "src/users/users.controller.ts",
			include: []string{"src/**/*.service.ts"},
			want:    false,
		},
		{
			name:    "double star without prefix",
			path:    "lib/deep/nested/thing.controller.ts",
			include: []string{"**/*.controller.ts"},
			want:    true,
		},
		{
			name:    "exclude wins over include",
			path:    "src/users/users.service.ts",
			include: []string{"src/**/*.service.ts"},
			exclude: []string{"src/**/users.service.ts"},
			want:    false,
		},
		{
			name:    "exclude spec files",
			path:    "src/users/users.service.spec.ts",
			include: []string{"src/**/*.service.ts", "src/**/*.spec.ts"},
			exclude: []string{"**/*.spec.ts"},
			want:    false,
		},
		{
			name:    "no include patterns",
			path:    "src/users/users.service.ts",
			include: nil,
			want:    false,
		},
		{
			name:    "basename pattern without double star",
			path:    "src/users/users.service.ts",
			include: []string{"*.service.ts"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesGlob(tt.path, tt.include, tt.exclude)
			if got != tt.want {
				t.Errorf("MatchesGlob(%q, %v, %v) = %v, want %v",
					tt.path, tt.include, tt.exclude, got, tt.want)
			}
		})
	}
}
