// Package fleet generates random, constraint-satisfying fleet records —
// devices, their interfaces, and the mappings under each interface — for use
// as property-based test inputs.
//
// Every composite generator takes a typed params struct whose fields are
// gen.Override values: leave a field unset to get the default distribution,
// pin it with gen.Value, or replace its distribution with gen.With. Params
// structs nest (DeviceParams.Interface, InterfaceParams.Mapping), so an
// override for a deeply nested field is addressed explicitly at its own
// level rather than by name collision.
//
//	g := fleet.NewDevice(fleet.DeviceParams{
//	    ID: gen.Value(myID),
//	    Interface: fleet.InterfaceParams{
//	        Ownership: gen.Value(fleet.OwnershipServer),
//	    },
//	})
//	dev, err := g.Sample(gen.NewRand(seed))
//
// Inter-field invariants hold by construction: minor version ranges follow
// the major version, properties interfaces are always individually
// aggregated, endpoint shapes follow the owning interface's aggregation,
// device timestamps form a non-decreasing chain bounded by the wall clock,
// and device totals are the exact sums of the per-interface counters.
// Derived fields (encoded ID, connected flag, totals) are computed from the
// resolved fields and are not independently overridable.
package fleet
