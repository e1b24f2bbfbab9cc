// biztime is a command line client for the biztime API.
//
// The API address is read from BIZTIME_API_URL (default http://localhost:8080).
package main

import "github.com/biztime-dev/biztime/internal/cli"

func main() {
	cli.Execute()
}
