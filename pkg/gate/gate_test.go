package gate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-notes/inkwell/pkg/core"
	"github.com/inkwell-notes/inkwell/pkg/gate"
)

func TestGate_EnsureAccess(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		env         *gate.StaticEnvironment
		wantErr     error
		wantPrompts int
	}{
		{
			name: "Android Scoped Storage Skips Prompt",
			env: &gate.StaticEnvironment{
				Platform:  gate.FamilyAndroid,
				OSVersion: gate.ScopedStorageVersion,
				Current:   gate.StatusDenied,
				Outcome:   gate.StatusDenied,
			},
		},
		{
			name: "Old Android Granted Status",
			env: &gate.StaticEnvironment{
				Platform:  gate.FamilyAndroid,
				OSVersion: 28,
				Current:   gate.StatusGranted,
			},
		},
		{
			name: "Old Android Prompt Granted",
			env: &gate.StaticEnvironment{
				Platform:  gate.FamilyAndroid,
				OSVersion: 28,
				Current:   gate.StatusDenied,
				Outcome:   gate.StatusGranted,
			},
			wantPrompts: 1,
		},
		{
			name: "Old Android Prompt Denied",
			env: &gate.StaticEnvironment{
				Platform:  gate.FamilyAndroid,
				OSVersion: 28,
				Current:   gate.StatusDenied,
				Outcome:   gate.StatusDenied,
			},
			wantErr:     core.ErrPermissionDenied,
			wantPrompts: 1,
		},
		{
			name: "IOS Always Granted",
			env: &gate.StaticEnvironment{
				Platform: gate.FamilyIOS,
				Current:  gate.StatusDenied,
				Outcome:  gate.StatusDenied,
			},
		},
		{
			name: "Other Granted Status",
			env: &gate.StaticEnvironment{
				Platform: gate.FamilyOther,
				Current:  gate.StatusGranted,
			},
		},
		{
			name: "Other Prompt Denied",
			env: &gate.StaticEnvironment{
				Platform: gate.FamilyOther,
				Current:  gate.StatusDenied,
				Outcome:  gate.StatusDenied,
			},
			wantErr:     core.ErrPermissionDenied,
			wantPrompts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gate.New(tt.env, nil)

			err := g.EnsureAccess(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantPrompts, tt.env.Requests, "prompt count")
		})
	}
}

func TestHostEnvironment_Family(t *testing.T) {
	env := &gate.HostEnvironment{}
	// Desktop and CI hosts are never the mobile families.
	assert.Contains(t, []gate.Family{gate.FamilyOther, gate.FamilyAndroid, gate.FamilyIOS}, env.Family())
}

func TestHostEnvironment_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("Writable Root Is Granted", func(t *testing.T) {
		env := &gate.HostEnvironment{Root: t.TempDir()}

		status, err := env.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, gate.StatusGranted, status)
	})

	t.Run("Missing Root Checks Parent", func(t *testing.T) {
		env := &gate.HostEnvironment{Root: t.TempDir() + "/not/yet/created"}

		status, err := env.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, gate.StatusGranted, status)
	})

	t.Run("Empty Root Is Denied", func(t *testing.T) {
		env := &gate.HostEnvironment{}

		status, err := env.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, gate.StatusDenied, status)
	})
}

func TestHostEnvironment_Request(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		answer string
		want   gate.Status
	}{
		{"Yes", "y\n", gate.StatusGranted},
		{"Yes Word", "yes\n", gate.StatusGranted},
		{"No", "n\n", gate.StatusDenied},
		{"Default Is No", "\n", gate.StatusDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			env := &gate.HostEnvironment{
				Root: t.TempDir(),
				In:   strings.NewReader(tt.answer),
				Out:  &out,
			}

			status, err := env.Request(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Contains(t, out.String(), "Allow?")
		})
	}
}
