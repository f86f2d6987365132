package contract

// -----------------------------------------------------------------------------
// Storage Key Layout
// -----------------------------------------------------------------------------

const (
	// ConfigKey stores the single platform configuration blob.
	ConfigKey = "config"
	// ProjectSeqKey holds the monotonic project-id counter.
	ProjectSeqKey = "prj_seq"
	// CommunityKey stores the community registry address list.
	CommunityKey = "community"
	// projectIndexKey is the base key of the chunked all-project-ids index.
	projectIndexKey = "prj:idx"
)

const (
	// kProject prefixes serialized Project blobs.
	kProject byte = 0x01
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our
// keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// projectKey builds the storage key string for a project by id.
func projectKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProject
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
