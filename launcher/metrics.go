// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for launch mode and outcome.
const (
	modeNative  = "native"
	modeBridged = "bridged"

	statusStarted   = "started"
	statusFailed    = "failed"
	statusRecovered = "recovered"
	statusMissing   = "missing"
)

var (
	launchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_launcher_launches_total",
			Help: "Browser launch attempts by variant, launch mode, and outcome",
		},
		[]string{"variant", "mode", "status"},
	)

	killTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_launcher_kills_total",
			Help: "Kill hook invocations by variant and launch mode",
		},
		[]string{"variant", "mode"},
	)

	pidRecoveryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_launcher_pid_recoveries_total",
			Help: "Remote PID recovery outcomes for WSL-bridged launches",
		},
		[]string{"status"},
	)
)

func recordLaunch(variant, mode, status string) {
	launchTotal.With(prometheus.Labels{"variant": variant, "mode": mode, "status": status}).Inc()
}

func recordKill(variant, mode string) {
	killTotal.With(prometheus.Labels{"variant": variant, "mode": mode}).Inc()
}

func recordPIDRecovery(status string) {
	pidRecoveryTotal.With(prometheus.Labels{"status": status}).Inc()
}
