package fleet

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetgen/fleetgen/pkg/gen"
)

var interfaceNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{0,15}(\.[a-zA-Z0-9]{1,16}){1,4}$`)

// smallInterface keeps default draws fast by capping the mapping count; the
// full default range is covered by TestDevice_Defaults.
func smallInterface(p InterfaceParams) gen.Gen[Interface] {
	if !p.Mappings.IsSet() {
		p.Mappings = gen.With(gen.SliceOf(NewMapping(p.Mapping), 1, 5))
	}
	return NewInterface(p)
}

func TestInterface_Defaults(t *testing.T) {
	r := gen.NewRand(1)
	g := smallInterface(InterfaceParams{})

	for i := 0; i < 200; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)

		assert.Regexp(t, interfaceNameRe, iface.Name)
		assert.GreaterOrEqual(t, iface.MajorVersion, 0)
		assert.LessOrEqual(t, iface.MajorVersion, maxMajorVersion)
		assert.Contains(t, []InterfaceType{TypeDatastream, TypeProperties}, iface.Type)
		assert.Contains(t, []Ownership{OwnershipDevice, OwnershipServer}, iface.Ownership)
		assert.NotEmpty(t, iface.Mappings)

		// 128-bit ID carries the v4 layout bits.
		assert.EqualValues(t, 4, iface.ID[6]>>4)
		assert.EqualValues(t, 0x80, iface.ID[8]&0xc0)
	}
}

func TestInterface_MinorVersionFollowsMajor(t *testing.T) {
	r := gen.NewRand(2)

	majorZero := smallInterface(InterfaceParams{MajorVersion: gen.Value(0)})
	for i := 0; i < 200; i++ {
		iface, err := majorZero.Sample(r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, iface.MinorVersion, 1, "major 0 forbids minor 0")
		assert.LessOrEqual(t, iface.MinorVersion, 255)
	}

	majorOne := smallInterface(InterfaceParams{MajorVersion: gen.Value(1)})
	sawZeroMinor := false
	for i := 0; i < 500; i++ {
		iface, err := majorOne.Sample(r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, iface.MinorVersion, 0)
		assert.LessOrEqual(t, iface.MinorVersion, 255)
		if iface.MinorVersion == 0 {
			sawZeroMinor = true
		}
	}
	assert.True(t, sawZeroMinor, "minor 0 should be reachable under major > 0")
}

func TestInterface_PropertiesForcesIndividual(t *testing.T) {
	r := gen.NewRand(3)
	g := smallInterface(InterfaceParams{Type: gen.Value(TypeProperties)})

	for i := 0; i < 200; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)
		assert.Equal(t, AggregationIndividual, iface.Aggregation)
	}
}

func TestInterface_DatastreamReachesBothAggregations(t *testing.T) {
	r := gen.NewRand(4)
	g := smallInterface(InterfaceParams{Type: gen.Value(TypeDatastream)})

	seen := make(map[Aggregation]bool)
	for i := 0; i < 200; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)
		seen[iface.Aggregation] = true
	}
	assert.True(t, seen[AggregationIndividual] && seen[AggregationObject])
}

func TestInterface_MappingEndpointsFollowAggregation(t *testing.T) {
	r := gen.NewRand(5)
	g := smallInterface(InterfaceParams{})

	for i := 0; i < 100; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)
		for _, m := range iface.Mappings {
			if iface.Aggregation == AggregationObject {
				assert.Regexp(t, objectEndpointRe, m.Endpoint)
			} else {
				assert.Regexp(t, individualEndpointRe, m.Endpoint)
			}
		}
	}
}

func TestInterface_NestedMappingOverridePropagates(t *testing.T) {
	r := gen.NewRand(6)
	g := smallInterface(InterfaceParams{
		Mapping: MappingParams{Endpoint: gen.Value("/fixed")},
	})

	for i := 0; i < 50; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)
		for _, m := range iface.Mappings {
			assert.Equal(t, "/fixed", m.Endpoint, "endpoint override must reach every nested mapping")
		}
	}
}

func TestInterface_MappingsCollectionOverride(t *testing.T) {
	r := gen.NewRand(7)
	fixed := []Mapping{{Endpoint: "/only", Type: ValueDouble}}
	g := NewInterface(InterfaceParams{Mappings: gen.Value(fixed)})

	for i := 0; i < 20; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)
		assert.Equal(t, fixed, iface.Mappings)
	}
}

func TestInterface_ConstantOverridesPinFields(t *testing.T) {
	r := gen.NewRand(8)
	g := smallInterface(InterfaceParams{
		Name:         gen.Value("com.example.Sensor"),
		MajorVersion: gen.Value(2),
	})

	names := make(map[string]bool)
	minors := make(map[int]bool)
	for i := 0; i < 100; i++ {
		iface, err := g.Sample(r)
		require.NoError(t, err)
		names[iface.Name] = true
		minors[iface.MinorVersion] = true
		assert.Equal(t, 2, iface.MajorVersion)
	}
	assert.Len(t, names, 1)
	assert.Greater(t, len(minors), 1, "unoverridden minor version should vary")
}

func TestInterface_KeyIdentity(t *testing.T) {
	iface := Interface{Name: "org.demo.Meter", MajorVersion: 3}
	assert.Equal(t, InterfaceKey{Name: "org.demo.Meter", Major: 3}, iface.Key())
}
