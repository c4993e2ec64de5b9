// Package config holds the validated settings consumed by the outer layers of the
// module. The cipher packages take no configuration; only logging is configurable.
package config
