// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/u-root/memtool/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Start serves the default Prometheus registry on addr under /metrics.
// Close the returned listener to stop serving.
func Start(addr string) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not listen: %v", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.Serve(l, mux)
		if err != nil {
			log.Debugf("Metrics server stopped: %v", err)
		}
	}()
	log.Infof("Serving metrics on %s", l.Addr())
	return l, nil
}
