package fleet

import (
	mathrand "math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetgen/fleetgen/internal/id"
	"github.com/fleetgen/fleetgen/pkg/gen"
)

// Version bounds for generated interfaces.
const (
	maxMajorVersion = 255
	maxMinorVersion = 255
)

// interfaceName draws a dotted name: 2 to 5 alphanumeric segments of 1 to 16
// characters. Names starting with a digit are filtered out under the bounded
// retry budget.
func interfaceName() gen.Gen[string] {
	segments := gen.SliceOf(gen.Alphanumeric(1, 16), 2, 5)
	name := gen.Map(segments, func(segs []string) string {
		return strings.Join(segs, ".")
	})
	return gen.Filter(name, func(s string) bool {
		return s[0] < '0' || s[0] > '9'
	})
}

// interfaceID draws a random 128-bit interface identifier with the UUID v4
// bit layout.
func interfaceID() gen.Gen[uuid.UUID] {
	return gen.New(func(r *mathrand.Rand) (uuid.UUID, error) {
		return id.New(r), nil
	})
}

// minorVersionFor returns the minor version distribution allowed under the
// given major version: major 0 interfaces must have a non-zero minor.
func minorVersionFor(major int) gen.Gen[int] {
	if major == 0 {
		return gen.IntRange(1, maxMinorVersion)
	}
	return gen.IntRange(0, maxMinorVersion)
}

// aggregationFor returns the aggregation distribution allowed under the given
// interface type: properties interfaces are always individually aggregated.
func aggregationFor(t InterfaceType) gen.Gen[Aggregation] {
	if t == TypeProperties {
		return gen.Const(AggregationIndividual)
	}
	return gen.OneOf(AggregationIndividual, AggregationObject)
}

// InterfaceParams selects overrides for NewInterface. Unset fields use the
// default distribution. Mapping is forwarded to every mapping generated under
// the interface; its Aggregation is forced to the interface's own drawn
// aggregation so endpoint shapes always match the owning context.
type InterfaceParams struct {
	ID           gen.Override[uuid.UUID]
	Name         gen.Override[string]
	MajorVersion gen.Override[int]
	MinorVersion gen.Override[int]
	Type         gen.Override[InterfaceType]
	Ownership    gen.Override[Ownership]
	Aggregation  gen.Override[Aggregation]
	Description  gen.Override[string]
	Doc          gen.Override[string]

	// Mappings replaces the whole mapping collection; when set, Mapping is
	// ignored.
	Mappings gen.Override[[]Mapping]
	Mapping  MappingParams
}

// NewInterface returns a generator of valid interfaces. Dependent fields are
// drawn in dependency order: the major version before the minor, the type
// before the aggregation, the aggregation before the mappings.
func NewInterface(p InterfaceParams) gen.Gen[Interface] {
	return gen.New(func(r *mathrand.Rand) (Interface, error) {
		var iface Interface

		ifaceID, err := p.ID.Or(interfaceID()).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.ID = ifaceID

		iface.Name, err = p.Name.Or(interfaceName()).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.MajorVersion, err = p.MajorVersion.Or(gen.IntRange(0, maxMajorVersion)).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.MinorVersion, err = p.MinorVersion.Or(minorVersionFor(iface.MajorVersion)).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.Type, err = p.Type.Or(gen.OneOf(TypeDatastream, TypeProperties)).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.Ownership, err = p.Ownership.Or(gen.OneOf(OwnershipDevice, OwnershipServer)).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.Aggregation, err = p.Aggregation.Or(aggregationFor(iface.Type)).Sample(r)
		if err != nil {
			return iface, err
		}

		mappingParams := p.Mapping
		mappingParams.Aggregation = gen.Value(iface.Aggregation)
		defaultMappings := gen.SliceOf(NewMapping(mappingParams), 1, MaxMappings)
		iface.Mappings, err = p.Mappings.Or(defaultMappings).Sample(r)
		if err != nil {
			return iface, err
		}

		iface.Description, err = p.Description.Or(gen.ASCII(0, maxDescriptionLen)).Sample(r)
		if err != nil {
			return iface, err
		}
		iface.Doc, err = p.Doc.Or(gen.ASCII(0, maxDocLen)).Sample(r)
		if err != nil {
			return iface, err
		}
		return iface, nil
	})
}
