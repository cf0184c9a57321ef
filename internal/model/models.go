package model

// Models lists every table in migration order (referenced tables first).
func Models() []interface{} {
	return []interface{}{
		&Socket{},
		&Cpu{},
	}
}
