// Command visakit serves the visa management UI and validates Japanese
// application fields from the command line.
//
//	visakit serve --addr :8080
//	visakit check postalCode 〒1234567
//	visakit check passportNumber C1234567 --nationality VNM
//	visakit form applicant.yaml
//	visakit nav --active renewal
package main

import "context"

func main() {
	Execute(context.Background())
}
