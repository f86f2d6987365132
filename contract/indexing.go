package contract

// Chunked id index. All indexes split into chunks of maxChunkSize entries to
// stay clear of the host's per-value size ceiling.

import (
	"encoding/json"
	"strconv"
)

const maxChunkSize = 2500

// chunkCounterKey stores the number of chunks for a base index.
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

func getChunkCount(baseKey string) int {
	ptr := getState().Get(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

func setChunkCount(baseKey string, n int) {
	getState().Set(chunkCounterKey(baseKey), strconv.Itoa(n))
}

func readChunk(key string) []uint64 {
	ptr := getState().Get(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return nil
	}
	return ids
}

func writeChunk(key string, ids []uint64) {
	b, _ := json.Marshal(ids)
	getState().Set(key, string(b))
}

// addIDToIndex ensures id exists across all chunks (no duplicates).
func addIDToIndex(baseKey string, id uint64) {
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ids := readChunk(key)
		for _, e := range ids {
			if e == id {
				return // already present
			}
		}
		if len(ids) < maxChunkSize {
			writeChunk(key, append(ids, id))
			return
		}
	}
	// no space -> create new chunk
	writeChunk(chunkKey(baseKey, chunks), []uint64{id})
	setChunkCount(baseKey, chunks+1)
}

// removeIDFromIndex removes id from whichever chunk holds it.
func removeIDFromIndex(baseKey string, id uint64) {
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ids := readChunk(key)
		if len(ids) == 0 {
			continue
		}
		kept := ids[:0]
		found := false
		for _, e := range ids {
			if e == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if found {
			writeChunk(key, kept)
			return
		}
	}
}

// getIDsFromIndex collects all ids across all chunks, in insertion order.
func getIDsFromIndex(baseKey string) []uint64 {
	var all []uint64
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		all = append(all, readChunk(chunkKey(baseKey, i))...)
	}
	return all
}
