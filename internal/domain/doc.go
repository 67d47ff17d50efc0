// Package domain contains the core model for romancalc.
//
// The domain has no knowledge of YAML, terminals or the filesystem. Infra and
// UI adapters map into/from these types.
package domain
