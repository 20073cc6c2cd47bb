package parts

import (
	"slices"
	"strings"
)

// Bucket is one of the fixed functional categories a learner sorts parts
// into.
type Bucket string

const (
	BucketInput        Bucket = "input"
	BucketProcess      Bucket = "process"
	BucketOutput       Bucket = "output"
	BucketExtension    Bucket = "extension"
	BucketConnectivity Bucket = "connectivity"
	BucketPower        Bucket = "power"
	BucketData         Bucket = "data"
	BucketMechanical   Bucket = "mechanical"
	BucketElectrical   Bucket = "electrical"
)

// Buckets returns every bucket in display order.
func Buckets() []Bucket {
	return []Bucket{
		BucketInput,
		BucketProcess,
		BucketOutput,
		BucketExtension,
		BucketConnectivity,
		BucketPower,
		BucketData,
		BucketMechanical,
		BucketElectrical,
	}
}

// Valid reports whether b is one of the fixed buckets.
func (b Bucket) Valid() bool {
	return slices.Contains(Buckets(), b)
}

// ParseBucket converts a bucket identifier to a Bucket.
func ParseBucket(s string) (Bucket, bool) {
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))
	return b, b.Valid()
}

// Name returns the display name.
func (b Bucket) Name() string {
	switch b {
	case BucketInput:
		return "Input"
	case BucketProcess:
		return "Process"
	case BucketOutput:
		return "Output"
	case BucketExtension:
		return "Extension Board"
	case BucketConnectivity:
		return "Connectivity"
	case BucketPower:
		return "Power"
	case BucketData:
		return "Data"
	case BucketMechanical:
		return "Mechanical Structure"
	case BucketElectrical:
		return "Electrical Components"
	default:
		return string(b)
	}
}

// Description returns the one-line help text shown under the bucket name.
func (b Bucket) Description() string {
	switch b {
	case BucketInput:
		return "Sensors and input devices"
	case BucketProcess:
		return "Microcontroller and processing"
	case BucketOutput:
		return "LEDs, displays, and actuators"
	case BucketExtension:
		return "Additional boards and modules"
	case BucketConnectivity:
		return "Communication modules"
	case BucketPower:
		return "Power supply and management"
	case BucketData:
		return "Data storage and logging"
	case BucketMechanical:
		return "Frames, mounts, and structural components"
	case BucketElectrical:
		return "Resistors, capacitors, and other prototyping parts such as breadboard, connectors, etc."
	default:
		return ""
	}
}

// Glyph returns the icon handle for the bucket.
func (b Bucket) Glyph() string {
	switch b {
	case BucketInput:
		return "input"
	case BucketProcess:
		return "memory"
	case BucketOutput:
		return "output"
	case BucketExtension:
		return "extension"
	case BucketConnectivity:
		return "wifi"
	case BucketPower:
		return "battery"
	case BucketData:
		return "storage"
	case BucketMechanical:
		return "build"
	case BucketElectrical:
		return "bolt"
	default:
		return ""
	}
}
