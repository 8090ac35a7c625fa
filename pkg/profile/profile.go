package profile

import (
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fleetgen/fleetgen/internal/id"
	"github.com/fleetgen/fleetgen/pkg/fleet"
	"github.com/fleetgen/fleetgen/pkg/gen"
)

// Profile is one generation run: how many devices to draw, under which seed,
// with which fields pinned.
type Profile struct {
	Seed   uint64 `yaml:"seed"`
	Count  int    `yaml:"count"`
	Device Device `yaml:"device"`
}

// Device pins device-level fields. Zero values mean "not pinned".
type Device struct {
	// ID is the encoded (22-character base64url) device ID.
	ID                       string    `yaml:"id"`
	LastSeenIP               string    `yaml:"last_seen_ip"`
	LastCredentialsRequestIP string    `yaml:"last_credentials_request_ip"`
	Interface                Interface `yaml:"interface"`
}

// Interface pins interface-level fields for every generated interface.
type Interface struct {
	Name         string  `yaml:"name"`
	MajorVersion *int    `yaml:"major_version"`
	MinorVersion *int    `yaml:"minor_version"`
	Type         string  `yaml:"type"`
	Ownership    string  `yaml:"ownership"`
	Aggregation  string  `yaml:"aggregation"`
	Mapping      Mapping `yaml:"mapping"`
}

// Mapping pins mapping-level fields for every generated mapping.
type Mapping struct {
	Endpoint    string `yaml:"endpoint"`
	Type        string `yaml:"type"`
	Reliability string `yaml:"reliability"`
	Retention   string `yaml:"retention"`
	Expiry      *int   `yaml:"expiry"`
}

// Load reads and parses a profile file. Unknown fields are rejected so a
// typoed key fails loudly instead of silently unpinning a field.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if p.Count < 0 {
		return nil, fmt.Errorf("profile %s: count must not be negative", path)
	}
	return &p, nil
}

// DeviceParams converts the profile's pinned fields into generator overrides,
// validating every enum and address along the way.
func (p *Profile) DeviceParams() (fleet.DeviceParams, error) {
	var dp fleet.DeviceParams

	if p.Device.ID != "" {
		devID, err := id.Decode(p.Device.ID)
		if err != nil {
			return dp, fmt.Errorf("device.id: %w", err)
		}
		dp.ID = gen.Value(devID)
	}
	if p.Device.LastSeenIP != "" {
		addr, err := parseIPv4(p.Device.LastSeenIP)
		if err != nil {
			return dp, fmt.Errorf("device.last_seen_ip: %w", err)
		}
		dp.LastSeenIP = gen.Value(addr)
	}
	if p.Device.LastCredentialsRequestIP != "" {
		addr, err := parseIPv4(p.Device.LastCredentialsRequestIP)
		if err != nil {
			return dp, fmt.Errorf("device.last_credentials_request_ip: %w", err)
		}
		dp.LastCredentialsRequestIP = gen.Value(addr)
	}

	ip, err := p.Device.Interface.params()
	if err != nil {
		return dp, err
	}
	dp.Interface = ip
	return dp, nil
}

func (i Interface) params() (fleet.InterfaceParams, error) {
	var ip fleet.InterfaceParams

	if i.Name != "" {
		ip.Name = gen.Value(i.Name)
	}
	if i.MajorVersion != nil {
		ip.MajorVersion = gen.Value(*i.MajorVersion)
	}
	if i.MinorVersion != nil {
		ip.MinorVersion = gen.Value(*i.MinorVersion)
	}
	if i.Type != "" {
		switch t := fleet.InterfaceType(i.Type); t {
		case fleet.TypeDatastream, fleet.TypeProperties:
			ip.Type = gen.Value(t)
		default:
			return ip, fmt.Errorf("interface.type: unknown value %q", i.Type)
		}
	}
	if i.Ownership != "" {
		switch o := fleet.Ownership(i.Ownership); o {
		case fleet.OwnershipDevice, fleet.OwnershipServer:
			ip.Ownership = gen.Value(o)
		default:
			return ip, fmt.Errorf("interface.ownership: unknown value %q", i.Ownership)
		}
	}
	if i.Aggregation != "" {
		switch a := fleet.Aggregation(i.Aggregation); a {
		case fleet.AggregationIndividual, fleet.AggregationObject:
			ip.Aggregation = gen.Value(a)
		default:
			return ip, fmt.Errorf("interface.aggregation: unknown value %q", i.Aggregation)
		}
	}

	mp, err := i.Mapping.params()
	if err != nil {
		return ip, err
	}
	ip.Mapping = mp
	return ip, nil
}

func (m Mapping) params() (fleet.MappingParams, error) {
	var mp fleet.MappingParams

	if m.Endpoint != "" {
		mp.Endpoint = gen.Value(m.Endpoint)
	}
	if m.Type != "" {
		vt := fleet.ValueType(m.Type)
		if !validValueType(vt) {
			return mp, fmt.Errorf("mapping.type: unknown value %q", m.Type)
		}
		mp.Type = gen.Value(vt)
	}
	if m.Reliability != "" {
		switch rel := fleet.Reliability(m.Reliability); rel {
		case fleet.ReliabilityUnreliable, fleet.ReliabilityGuaranteed, fleet.ReliabilityUnique:
			mp.Reliability = gen.Value(rel)
		default:
			return mp, fmt.Errorf("mapping.reliability: unknown value %q", m.Reliability)
		}
	}
	if m.Retention != "" {
		switch ret := fleet.Retention(m.Retention); ret {
		case fleet.RetentionDiscard, fleet.RetentionVolatile, fleet.RetentionStored:
			mp.Retention = gen.Value(ret)
		default:
			return mp, fmt.Errorf("mapping.retention: unknown value %q", m.Retention)
		}
	}
	if m.Expiry != nil {
		if *m.Expiry < 0 {
			return mp, fmt.Errorf("mapping.expiry: must not be negative")
		}
		mp.Expiry = gen.Value(*m.Expiry)
	}
	return mp, nil
}

func validValueType(vt fleet.ValueType) bool {
	switch vt {
	case fleet.ValueDouble, fleet.ValueInteger, fleet.ValueBoolean,
		fleet.ValueLongInteger, fleet.ValueString, fleet.ValueBinaryBlob,
		fleet.ValueDateTime, fleet.ValueDoubleArray, fleet.ValueIntegerArray,
		fleet.ValueBooleanArray, fleet.ValueLongIntArray, fleet.ValueStringArray,
		fleet.ValueBinaryBlobArray, fleet.ValueDateTimeArray:
		return true
	}
	return false
}

func parseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid address: %w", err)
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("address %s is not IPv4", addr)
	}
	return addr, nil
}
