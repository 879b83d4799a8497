// Package visa serves the visa management shell and the Japanese field
// validation API over HTTP.
//
// Pages are shell documents, one per nav item, addressed by the nav href
// (/employees.html, /visa-renewal.html, ...). Each registered jpfield name has
// an inline check page under /fields/{field}; when the form is driven by
// DataStar only the hint fragment is patched back. The JSON API mirrors the
// library:
//
//	POST /api/fields/{field}  {"value": "〒1234567"}  ->  {"data": Result}
//	POST /api/validate        {"familyName": ...}     ->  {"data": Summary}
//
// Validation failures are part of the 200 response body. Transport errors go
// through handler.NewErrorHandler and come back as JSON, a toast patch or an
// error page depending on the request.
//
//	svc := visa.NewService(
//		visa.WithLogger(log),
//		visa.WithMetrics(metrics.New("visakit")),
//		visa.WithLocation(tokyo),
//	)
//	err := httpserver.New(httpserver.Config{Addr: ":8080"}).Run(ctx, svc.Handle())
package visa
