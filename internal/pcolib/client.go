package pcolib

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Every request gets an explicit deadline; the upstream default of no
// timeout can hang a command forever on a stalled connection.
const requestTimeout = 30 * time.Second

func GetClient(cacert string) (http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cacert != "" {
		file, err := os.Open(cacert)
		if err != nil {
			return http.Client{}, err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return http.Client{}, err
		}
		certPool := x509.NewCertPool()
		if !certPool.AppendCertsFromPEM(data) {
			return http.Client{}, fmt.Errorf(
				"could not load certificates from file '%s'",
				cacert,
			)
		}

		transport.TLSClientConfig = &tls.Config{RootCAs: certPool}
	}

	return http.Client{Transport: transport, Timeout: requestTimeout}, nil
}
