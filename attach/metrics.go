// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processListDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "azd_attach_process_list_duration_seconds",
			Help:    "Duration of process listing in seconds, including the PowerShell probe",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"platform", "lister", "status"},
	)

	processListTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azd_attach_process_list_total",
			Help: "Total number of process listings performed",
		},
		[]string{"platform", "lister", "status"},
	)

	processListItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "azd_attach_process_list_items",
			Help: "Number of attach items returned by the last listing",
		},
		[]string{"lister"},
	)

	probeFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azd_attach_probe_fallback_total",
			Help: "Times a tool probe failed and the fallback lister was used",
		},
		[]string{"tool", "reason"},
	)
)

const (
	statusSuccess = "success"
	statusError   = "error"
)
