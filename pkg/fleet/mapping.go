package fleet

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"
	"sync/atomic"

	"github.com/fleetgen/fleetgen/pkg/gen"
)

// MaxMappings is the most mappings a generated interface carries.
const MaxMappings = 1000

// Choice sets for the mapping fields.
var (
	valueTypes = []ValueType{
		ValueDouble, ValueInteger, ValueBoolean, ValueLongInteger,
		ValueString, ValueBinaryBlob, ValueDateTime,
		ValueDoubleArray, ValueIntegerArray, ValueBooleanArray,
		ValueLongIntArray, ValueStringArray, ValueBinaryBlobArray,
		ValueDateTimeArray,
	}
	reliabilities      = []Reliability{ReliabilityUnreliable, ReliabilityGuaranteed, ReliabilityUnique}
	retentions         = []Retention{RetentionDiscard, RetentionVolatile, RetentionStored}
	databaseRetentions = []DatabaseRetention{NoTTL, UseTTL}
)

// Expiry and TTL are in seconds; descriptions are short, docs longer.
const (
	maxExpiry         = 1_000_000
	maxRetentionTTL   = 31_536_000 // one year
	maxDescriptionLen = 64
	maxDocLen         = 256
)

// endpointSeq numbers endpoint tokens process-wide so no two default-drawn
// endpoints ever collide, even across concurrent draws. Never reset.
var endpointSeq atomic.Uint64

func nextEndpointToken() uint64 {
	return endpointSeq.Add(1)
}

// endpointSegment draws one path segment: a lowercase/underscore token,
// sometimes wrapped as %{token} to mark a parametric segment.
func endpointSegment() gen.Gen[string] {
	token := gen.LowerSnake(1, 16)
	parametric := gen.Map(token, func(s string) string {
		return "%{" + s + "}"
	})
	return gen.Union(token, parametric)
}

// endpointGen draws an endpoint whose shape follows the aggregation context:
// individually aggregated mappings sit under their own leaf path, object
// aggregation groups values under a shared object prefix. The trailing token
// comes from the process-wide counter, so distinct draws never collide.
func endpointGen(aggregation Aggregation) gen.Gen[string] {
	segments := gen.SliceOf(endpointSegment(), 1, 3)
	return gen.Map(segments, func(segs []string) string {
		prefix := "/" + strings.Join(segs, "/")
		if aggregation == AggregationObject {
			return fmt.Sprintf("/objects%s/v_%d", prefix, nextEndpointToken())
		}
		return fmt.Sprintf("%s/v_%d", prefix, nextEndpointToken())
	})
}

// MappingParams selects overrides for NewMapping. Unset fields use the
// default distribution.
type MappingParams struct {
	// Endpoint takes precedence over the counter-token uniqueness: pinning
	// it makes every affected mapping carry the same endpoint.
	Endpoint gen.Override[string]
	// Aggregation sets the aggregation context shaping the endpoint. It is
	// honored on direct NewMapping calls; an owning interface forces its own
	// drawn aggregation here.
	Aggregation          gen.Override[Aggregation]
	Type                 gen.Override[ValueType]
	Reliability          gen.Override[Reliability]
	Retention            gen.Override[Retention]
	Expiry               gen.Override[int]
	DatabaseRetention    gen.Override[DatabaseRetention]
	DatabaseRetentionTTL gen.Override[int]
	Description          gen.Override[string]
	Doc                  gen.Override[string]
}

// NewMapping returns a generator of valid mappings. The default endpoint
// shape follows the aggregation context, and the retention TTL is drawn only
// under the use_ttl policy.
func NewMapping(p MappingParams) gen.Gen[Mapping] {
	return gen.New(func(r *mathrand.Rand) (Mapping, error) {
		var m Mapping

		aggregation, err := p.Aggregation.Or(gen.Const(AggregationIndividual)).Sample(r)
		if err != nil {
			return m, err
		}
		m.Endpoint, err = p.Endpoint.Or(endpointGen(aggregation)).Sample(r)
		if err != nil {
			return m, err
		}
		m.Type, err = p.Type.Or(gen.OneOf(valueTypes...)).Sample(r)
		if err != nil {
			return m, err
		}
		m.Reliability, err = p.Reliability.Or(gen.OneOf(reliabilities...)).Sample(r)
		if err != nil {
			return m, err
		}
		m.Retention, err = p.Retention.Or(gen.OneOf(retentions...)).Sample(r)
		if err != nil {
			return m, err
		}
		m.Expiry, err = p.Expiry.Or(gen.IntRange(0, maxExpiry)).Sample(r)
		if err != nil {
			return m, err
		}
		m.DatabaseRetention, err = p.DatabaseRetention.Or(gen.OneOf(databaseRetentions...)).Sample(r)
		if err != nil {
			return m, err
		}
		ttlDefault := gen.Const(0)
		if m.DatabaseRetention == UseTTL {
			ttlDefault = gen.IntRange(1, maxRetentionTTL)
		}
		m.DatabaseRetentionTTL, err = p.DatabaseRetentionTTL.Or(ttlDefault).Sample(r)
		if err != nil {
			return m, err
		}
		m.Description, err = p.Description.Or(gen.ASCII(0, maxDescriptionLen)).Sample(r)
		if err != nil {
			return m, err
		}
		m.Doc, err = p.Doc.Or(gen.ASCII(0, maxDocLen)).Sample(r)
		if err != nil {
			return m, err
		}
		return m, nil
	})
}
