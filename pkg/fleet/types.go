package fleet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterfaceType tells whether an interface streams datapoints or holds
// persistent properties.
type InterfaceType string

// Interface types.
const (
	TypeDatastream InterfaceType = "datastream"
	TypeProperties InterfaceType = "properties"
)

// Ownership tells which side of the connection writes an interface.
type Ownership string

// Ownership values.
const (
	OwnershipDevice Ownership = "device"
	OwnershipServer Ownership = "server"
)

// Aggregation tells whether an interface's datapoints are reported per
// endpoint or grouped as one object.
type Aggregation string

// Aggregation values.
const (
	AggregationIndividual Aggregation = "individual"
	AggregationObject     Aggregation = "object"
)

// Reliability is a mapping's delivery guarantee.
type Reliability string

// Reliability values.
const (
	ReliabilityUnreliable Reliability = "unreliable"
	ReliabilityGuaranteed Reliability = "guaranteed"
	ReliabilityUnique     Reliability = "unique"
)

// Retention tells what happens to undeliverable values.
type Retention string

// Retention values.
const (
	RetentionDiscard  Retention = "discard"
	RetentionVolatile Retention = "volatile"
	RetentionStored   Retention = "stored"
)

// DatabaseRetention is a mapping's database retention policy.
type DatabaseRetention string

// Database retention policies.
const (
	NoTTL  DatabaseRetention = "no_ttl"
	UseTTL DatabaseRetention = "use_ttl"
)

// ValueType is the type of the values published on a mapping's endpoint.
type ValueType string

// Value types, scalar and array forms.
const (
	ValueDouble          ValueType = "double"
	ValueInteger         ValueType = "integer"
	ValueBoolean         ValueType = "boolean"
	ValueLongInteger     ValueType = "longinteger"
	ValueString          ValueType = "string"
	ValueBinaryBlob      ValueType = "binaryblob"
	ValueDateTime        ValueType = "datetime"
	ValueDoubleArray     ValueType = "doublearray"
	ValueIntegerArray    ValueType = "integerarray"
	ValueBooleanArray    ValueType = "booleanarray"
	ValueLongIntArray    ValueType = "longintegerarray"
	ValueStringArray     ValueType = "stringarray"
	ValueBinaryBlobArray ValueType = "binaryblobarray"
	ValueDateTimeArray   ValueType = "datetimearray"
)

// Mapping addresses one endpoint of an interface and the policy applied to
// values published on it.
type Mapping struct {
	Endpoint             string            `json:"endpoint"`
	Type                 ValueType         `json:"type"`
	Reliability          Reliability       `json:"reliability"`
	Retention            Retention         `json:"retention"`
	Expiry               int               `json:"expiry"`
	DatabaseRetention    DatabaseRetention `json:"database_retention_policy"`
	DatabaseRetentionTTL int               `json:"database_retention_ttl,omitempty"`
	Description          string            `json:"description,omitempty"`
	Doc                  string            `json:"doc,omitempty"`
}

// Interface is a versioned, named collection of mappings installed on a
// device.
type Interface struct {
	ID           uuid.UUID     `json:"interface_id"`
	Name         string        `json:"interface_name"`
	MajorVersion int           `json:"major_version"`
	MinorVersion int           `json:"minor_version"`
	Type         InterfaceType `json:"type"`
	Ownership    Ownership     `json:"ownership"`
	Aggregation  Aggregation   `json:"aggregation"`
	Mappings     []Mapping     `json:"mappings"`
	Description  string        `json:"description,omitempty"`
	Doc          string        `json:"doc,omitempty"`
}

// Key returns the identity under which the interface is unique on a device.
func (i Interface) Key() InterfaceKey {
	return InterfaceKey{Name: i.Name, Major: i.MajorVersion}
}

// InterfaceKey identifies an interface on a device: two installed interfaces
// never share both name and major version.
type InterfaceKey struct {
	Name  string
	Major int
}

// MarshalText encodes the key as "<name> v<major>" so it can serve as a JSON
// object key.
func (k InterfaceKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s v%d", k.Name, k.Major)), nil
}

// UnmarshalText parses the "<name> v<major>" form produced by MarshalText.
func (k *InterfaceKey) UnmarshalText(text []byte) error {
	s := string(text)
	i := strings.LastIndex(s, " v")
	if i < 0 {
		return fmt.Errorf("interface key %q missing version suffix", s)
	}
	major, err := strconv.Atoi(s[i+2:])
	if err != nil {
		return fmt.Errorf("interface key %q has invalid major version: %w", s, err)
	}
	k.Name = s[:i]
	k.Major = major
	return nil
}

// Device is one fleet member: identity, connectivity history, installed
// interfaces and per-interface traffic counters.
type Device struct {
	// ID is the raw 128-bit device identifier; DeviceID mirrors it for
	// consumers that address devices by that name. EncodedID is the
	// base64url form used on the wire.
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	EncodedID string    `json:"encoded_id"`

	Connected                bool       `json:"connected"`
	LastSeenIP               netip.Addr `json:"last_seen_ip"`
	LastCredentialsRequestIP netip.Addr `json:"last_credentials_request_ip"`

	FirstRegistration       time.Time `json:"first_registration"`
	FirstCredentialsRequest time.Time `json:"first_credentials_request"`
	LastConnection          time.Time `json:"last_connection"`
	LastDisconnection       time.Time `json:"last_disconnection"`

	Interfaces []Interface `json:"interfaces"`

	InterfacesMsgs     map[InterfaceKey]int64 `json:"interfaces_msgs"`
	InterfacesBytes    map[InterfaceKey]int64 `json:"interfaces_bytes"`
	TotalReceivedMsgs  int64                  `json:"total_received_msgs"`
	TotalReceivedBytes int64                  `json:"total_received_bytes"`
}
