package fleet

import (
	mathrand "math/rand/v2"
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/fleetgen/fleetgen/internal/id"
	"github.com/fleetgen/fleetgen/pkg/gen"
)

// MaxInterfaces is the most interfaces a generated device carries.
const MaxInterfaces = 10

// Per-interface counter ceiling.
const maxCounter = 10_000_000

// historySpan bounds how far back a device's history may start.
const historySpan = 5 * 365 * 24 * time.Hour

// deviceID draws a random device identifier with the UUID v4 bit layout.
func deviceID() gen.Gen[uuid.UUID] {
	return gen.New(func(r *mathrand.Rand) (uuid.UUID, error) {
		return id.New(r), nil
	})
}

// ipv4 draws a uniformly random IPv4 address.
func ipv4() gen.Gen[netip.Addr] {
	return gen.New(func(r *mathrand.Rand) (netip.Addr, error) {
		var b [4]byte
		for i := range b {
			b[i] = byte(r.IntN(256))
		}
		return netip.AddrFrom4(b), nil
	})
}

// counters draws one counter per interface key.
func counters(keys []InterfaceKey) gen.Gen[map[InterfaceKey]int64] {
	return gen.New(func(r *mathrand.Rand) (map[InterfaceKey]int64, error) {
		out := make(map[InterfaceKey]int64, len(keys))
		for _, k := range keys {
			v, err := gen.Int64Range(0, maxCounter).Sample(r)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	})
}

// sumCounters returns the exact total across a counter map.
func sumCounters(m map[InterfaceKey]int64) int64 {
	var total int64
	for _, v := range m {
		total += v
	}
	return total
}

// DeviceParams selects overrides for NewDevice. Unset fields use the default
// distribution. Interface is forwarded to every interface generated under the
// device. DeviceID, EncodedID, Connected and the two totals are derived from
// the resolved fields and are not overridable.
type DeviceParams struct {
	ID                       gen.Override[uuid.UUID]
	LastSeenIP               gen.Override[netip.Addr]
	LastCredentialsRequestIP gen.Override[netip.Addr]

	// Timestamp overrides replace single links of the chain; the remaining
	// defaults stay bounded by whatever the neighboring draws produced.
	FirstRegistration       gen.Override[time.Time]
	FirstCredentialsRequest gen.Override[time.Time]
	LastConnection          gen.Override[time.Time]
	LastDisconnection       gen.Override[time.Time]

	// Interfaces replaces the whole interface collection; when set,
	// Interface is ignored.
	Interfaces gen.Override[[]Interface]
	Interface  InterfaceParams

	InterfacesMsgs  gen.Override[map[InterfaceKey]int64]
	InterfacesBytes gen.Override[map[InterfaceKey]int64]
}

// NewDevice returns a generator of valid devices. The four history
// timestamps are drawn back to front, each upper-bounded by the previous
// draw and the outermost by the wall clock, so the non-decreasing chain
// holds by construction. Interfaces are unique by (name, major version).
func NewDevice(p DeviceParams) gen.Gen[Device] {
	return gen.New(func(r *mathrand.Rand) (Device, error) {
		var d Device

		devID, err := p.ID.Or(deviceID()).Sample(r)
		if err != nil {
			return d, err
		}
		d.ID = devID
		d.DeviceID = devID
		d.EncodedID = id.Encode(devID)

		d.LastSeenIP, err = p.LastSeenIP.Or(ipv4()).Sample(r)
		if err != nil {
			return d, err
		}
		d.LastCredentialsRequestIP, err = p.LastCredentialsRequestIP.Or(ipv4()).Sample(r)
		if err != nil {
			return d, err
		}

		now := time.Now().UTC()
		start := now.Add(-historySpan)
		// upTo keeps the chain well-formed even when an override pins an
		// upper link before the default history window.
		upTo := func(hi time.Time) gen.Gen[time.Time] {
			lo := start
			if hi.Before(lo) {
				lo = hi
			}
			return gen.TimeRange(lo, hi)
		}

		d.LastDisconnection, err = p.LastDisconnection.Or(gen.TimeRange(start, now)).Sample(r)
		if err != nil {
			return d, err
		}
		// Half the devices come out still connected: their last connection
		// snaps to the disconnection bound instead of preceding it.
		lastConnection := gen.New(func(r *mathrand.Rand) (time.Time, error) {
			t, err := upTo(d.LastDisconnection).Sample(r)
			if err != nil {
				return time.Time{}, err
			}
			if r.IntN(2) == 0 {
				t = d.LastDisconnection
			}
			return t, nil
		})
		d.LastConnection, err = p.LastConnection.Or(lastConnection).Sample(r)
		if err != nil {
			return d, err
		}
		d.FirstCredentialsRequest, err = p.FirstCredentialsRequest.Or(upTo(d.LastConnection)).Sample(r)
		if err != nil {
			return d, err
		}
		d.FirstRegistration, err = p.FirstRegistration.Or(upTo(d.FirstCredentialsRequest)).Sample(r)
		if err != nil {
			return d, err
		}
		d.Connected = !d.LastConnection.Before(d.LastDisconnection)

		defaultInterfaces := gen.UniqueSliceOf(NewInterface(p.Interface), Interface.Key, 0, MaxInterfaces)
		d.Interfaces, err = p.Interfaces.Or(defaultInterfaces).Sample(r)
		if err != nil {
			return d, err
		}

		keys := make([]InterfaceKey, len(d.Interfaces))
		for i, iface := range d.Interfaces {
			keys[i] = iface.Key()
		}
		d.InterfacesMsgs, err = p.InterfacesMsgs.Or(counters(keys)).Sample(r)
		if err != nil {
			return d, err
		}
		d.InterfacesBytes, err = p.InterfacesBytes.Or(counters(keys)).Sample(r)
		if err != nil {
			return d, err
		}
		d.TotalReceivedMsgs = sumCounters(d.InterfacesMsgs)
		d.TotalReceivedBytes = sumCounters(d.InterfacesBytes)
		return d, nil
	})
}
