package contract

import (
	"fmt"

	"cosmossdk.io/math"
)

// Terse pipe-delimited log lines per state transition so indexers can follow
// the platform without diffing storage.

// emitProjectAdded pings watchers when a fresh project enters review.
func emitProjectAdded(projectID uint64, creator string) {
	getHost().Log(fmt.Sprintf("pa|id:%d|by:%s", projectID, creator))
}

// emitProjectRemoved marks the administrative hard delete.
func emitProjectRemoved(projectID uint64) {
	getHost().Log(fmt.Sprintf("pr|id:%d", projectID))
}

// emitStatusChanged is the swiss army knife line for any lifecycle flip.
func emitStatusChanged(projectID uint64, status ProjectStatus) {
	getHost().Log(fmt.Sprintf("ps|id:%d|s:%s", projectID, status.String()))
}

// emitStatusOverride logs the owner's force-set distinctly from a normal
// transition so auditors can separate recovery actions from protocol flow.
func emitStatusOverride(projectID uint64, status ProjectStatus, by string) {
	getHost().Log(fmt.Sprintf("po|id:%d|s:%s|by:%s", projectID, status.String(), by))
}

// emitBacked records track, net credit and fee for every accepted backing.
func emitBacked(projectID uint64, wallet string, community bool, net, fee math.Uint) {
	track := "general"
	if community {
		track = "community"
	}
	getHost().Log(fmt.Sprintf("pb|id:%d|by:%s|t:%s|net:%s|fee:%s",
		projectID, wallet, track, net.String(), fee.String()))
}

// emitVote includes the raw boolean so quorum math can be replayed from logs.
func emitVote(projectID, step uint64, voter string, voted bool) {
	getHost().Log(fmt.Sprintf("mv|id:%d|ms:%d|by:%s|v:%t", projectID, step, voter, voted))
}

// emitRelease traces every treasury redemption with both rates, since the
// spread between them explains the payout size.
func emitRelease(projectID, step uint64, withdraw, actual, oracleRate math.Uint) {
	getHost().Log(fmt.Sprintf("mr|id:%d|ms:%d|w:%s|a:%s|rate:%s",
		projectID, step, withdraw.String(), actual.String(), oracleRate.String()))
}

// emitRefund mirrors the release line for the failure path.
func emitRefund(projectID uint64, backers int, actual math.Uint) {
	getHost().Log(fmt.Sprintf("rf|id:%d|n:%d|a:%s", projectID, backers, actual.String()))
}

// emitSweep logs the emergency drain target.
func emitSweep(wallet string) {
	getHost().Log(fmt.Sprintf("sw|to:%s", wallet))
}

// emitCommunityChanged tracks registry mutations with one add/remove flag.
func emitCommunityChanged(wallet string, added bool) {
	op := "rm"
	if added {
		op = "add"
	}
	getHost().Log(fmt.Sprintf("cm|op:%s|w:%s", op, wallet))
}
