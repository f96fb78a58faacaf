package handler

import "sync/atomic"

type sinkCounters struct {
	records     atomic.Int64
	writeErrors atomic.Int64
}

func (c *sinkCounters) snapshot() (records, writeErrors int64) {
	return c.records.Load(), c.writeErrors.Load()
}

func newSinkCounters() *sinkCounters {
	return &sinkCounters{
		records:     atomic.Int64{},
		writeErrors: atomic.Int64{},
	}
}
