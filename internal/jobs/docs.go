// Package jobs provides scheduled background tasks for the delivery network.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated by
// JobManager, which the composition root starts at boot and stops on
// shutdown.
//
// # Available Jobs
//
// EscrowAuditJob runs every minute and verifies the escrow conservation
// invariant: the pool account balance equals the summed price of every
// package whose escrow is still held. Violations are logged at error level
// for the operator. The job never mutates state, an inconsistent ledger
// needs human investigation.
package jobs
