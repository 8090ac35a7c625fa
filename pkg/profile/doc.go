// Package profile loads YAML generation profiles for the fleetgen CLI.
//
// A profile pins chosen fields of the generated devices to fixed values;
// everything left out keeps its default distribution. Pinned values become
// constant overrides on the corresponding generator params.
//
// Example profile:
//
//	seed: 42
//	count: 10
//	device:
//	  last_seen_ip: 10.0.0.1
//	  interface:
//	    ownership: server
//	    mapping:
//	      reliability: guaranteed
//
// Pinning interface name and major_version together leaves room for at most
// one distinct interface per device; draws that try to place a second one
// fail with a generation error, since installed interfaces are unique by
// (name, major_version).
package profile
