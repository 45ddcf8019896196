package badger

const (
	tablePrefix         = "cortab"
	tableRevisionPrefix = "cortabrev"
	tableRevisionSeq    = "cortabseq"
)

// makeTableKey generates the key holding an encoded table.
// Format: prefix:name
func makeTableKey(name string) []byte {
	return []byte(tablePrefix + ":" + name)
}

// tableKeyPrefix matches every table key and no revision key.
func tableKeyPrefix() []byte {
	return []byte(tablePrefix + ":")
}

// tableNameFromKey strips the table prefix from a key.
func tableNameFromKey(key []byte) string {
	return string(key[len(tablePrefix)+1:])
}

// makeTableRevisionKey generates the key holding a table's revision number.
// Format: prefix:name
func makeTableRevisionKey(name string) []byte {
	return []byte(tableRevisionPrefix + ":" + name)
}
