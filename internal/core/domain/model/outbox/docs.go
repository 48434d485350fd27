// Package outbox implements the transactional outbox records that decouple
// state changes from message publication.
//
// An outbox Record is written in the same database transaction as the order
// change it announces. A background relay later publishes pending records to
// the message queue and marks them sent. Publication is therefore atomic with
// the state change: if the transaction rolls back, no message is ever
// published; if the process crashes after commit, the relay picks the record
// up on its next run.
//
// Records carry an opaque serialized payload together with the correlation
// identifier and event type needed to address the message on the wire. The
// outbox does not interpret the payload.
package outbox
