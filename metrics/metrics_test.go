// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it owns a registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then it uses the given registry", func() {
				So(manager.Registry(), ShouldEqual, registry)
			})
		})
	})
}

func TestRecording(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		manager := NewManager(WithRegistry(prometheus.NewRegistry()))

		Convey("When requests are observed", func() {
			manager.ObserveRequest("GET", "GET /users", 200, 15*time.Millisecond)
			manager.ObserveRequest("GET", "GET /users", 200, 5*time.Millisecond)
			manager.ObserveRequest("PUT", "PUT /user/{id}", 404, time.Millisecond)

			Convey("Then counters are labelled by status", func() {
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("GET", "GET /users", "200")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("PUT", "PUT /user/{id}", "404")), ShouldEqual, 1)
			})
		})

		Convey("When domain events are recorded", func() {
			manager.PersonUpdated(3)
			manager.PersonUpdated(0)
			manager.HardwareOperation("checkout", "ok")
			manager.HardwareOperation("checkout", "unavailable")
			manager.Scan("duplicate")
			manager.StoreError("update_person")

			Convey("Then each counter reflects them", func() {
				So(testutil.ToFloat64(manager.personUpdates), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.skillRatings), ShouldEqual, 3)
				So(testutil.ToFloat64(manager.hardwareLoans.WithLabelValues("checkout", "ok")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.hardwareLoans.WithLabelValues("checkout", "unavailable")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.scans.WithLabelValues("duplicate")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.storeErrors.WithLabelValues("update_person")), ShouldEqual, 1)
			})
		})
	})
}

func TestNilManager(t *testing.T) {
	Convey("Given a nil manager", t, func() {
		var manager *Manager

		Convey("Then recording is a no-op", func() {
			So(func() {
				manager.ObserveRequest("GET", "/", 200, time.Millisecond)
				manager.PersonUpdated(1)
				manager.HardwareOperation("return", "ok")
				manager.Scan("ok")
				manager.StoreError("list_users")
			}, ShouldNotPanic)
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given a manager with one observed request", t, func() {
		manager := NewManager(WithRegistry(prometheus.NewRegistry()))
		manager.ObserveRequest("GET", "GET /events", 200, time.Millisecond)

		Convey("When scraping the handler", func() {
			w := httptest.NewRecorder()
			manager.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

			Convey("Then the exposition contains the request counter", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(w.Body.String(), "hackathon_http_requests_total"), ShouldBeTrue)
			})
		})
	})
}
