// Package metrics exposes Prometheus counters and histograms for field and
// form validation plus HTTP request accounting.
//
// Metrics owns its registry so tests and multiple servers in one process do
// not collide on the global default registerer.
//
//	m := metrics.New("visakit")
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
//	m.ObserveField(jpfield.FieldPostalCode, res.Valid)
package metrics
