package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetgen/fleetgen/pkg/fleet"
	"github.com/fleetgen/fleetgen/pkg/gen"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeProfile(t, `
seed: 42
count: 10
device:
  last_seen_ip: 10.0.0.1
  interface:
    ownership: server
    major_version: 2
    mapping:
      reliability: guaranteed
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 42, p.Seed)
	assert.Equal(t, 10, p.Count)
	assert.Equal(t, "server", p.Device.Interface.Ownership)
	require.NotNil(t, p.Device.Interface.MajorVersion)
	assert.Equal(t, 2, *p.Device.Interface.MajorVersion)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeProfile(t, `
device:
  interface:
    onwership: server
`)
	_, err := Load(path)
	assert.Error(t, err, "typoed keys must fail loudly")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDeviceParams_InvalidEnums(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"interface type", "device:\n  interface:\n    type: stream\n"},
		{"ownership", "device:\n  interface:\n    ownership: cloud\n"},
		{"aggregation", "device:\n  interface:\n    aggregation: grouped\n"},
		{"mapping type", "device:\n  interface:\n    mapping:\n      type: float\n"},
		{"reliability", "device:\n  interface:\n    mapping:\n      reliability: exactly_once\n"},
		{"retention", "device:\n  interface:\n    mapping:\n      retention: forever\n"},
		{"device id", "device:\n  id: not-a-valid-id\n"},
		{"ip", "device:\n  last_seen_ip: 999.0.0.1\n"},
		{"ipv6", "device:\n  last_seen_ip: ::1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(writeProfile(t, tt.content))
			require.NoError(t, err)
			_, err = p.DeviceParams()
			assert.Error(t, err)
		})
	}
}

func TestDeviceParams_PinsApply(t *testing.T) {
	path := writeProfile(t, `
device:
  last_seen_ip: 192.168.1.7
  interface:
    type: properties
    mapping:
      endpoint: /fixed
`)
	p, err := Load(path)
	require.NoError(t, err)
	params, err := p.DeviceParams()
	require.NoError(t, err)

	// Keep nested collections small for the draw loop.
	ip := params.Interface
	ip.Mappings = gen.With(gen.SliceOf(fleet.NewMapping(ip.Mapping), 1, 4))
	params.Interfaces = gen.With(gen.UniqueSliceOf(fleet.NewInterface(ip), fleet.Interface.Key, 1, 4))

	r := gen.NewRand(1)
	g := fleet.NewDevice(params)
	for i := 0; i < 20; i++ {
		d, err := g.Sample(r)
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.7", d.LastSeenIP.String())
		for _, iface := range d.Interfaces {
			assert.Equal(t, fleet.TypeProperties, iface.Type)
			for _, m := range iface.Mappings {
				assert.Equal(t, "/fixed", m.Endpoint)
			}
		}
	}
}

func TestDeviceParams_EmptyProfilePinsNothing(t *testing.T) {
	p, err := Load(writeProfile(t, "count: 1\n"))
	require.NoError(t, err)
	params, err := p.DeviceParams()
	require.NoError(t, err)

	assert.False(t, params.ID.IsSet())
	assert.False(t, params.LastSeenIP.IsSet())
	assert.False(t, params.Interface.Name.IsSet())
	assert.False(t, params.Interface.Mapping.Endpoint.IsSet())
}
