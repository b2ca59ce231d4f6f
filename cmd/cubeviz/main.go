// cubeviz - layered-cube scrambler and 3D terminal viewer.
package main

import (
	"github.com/seamusw/cubeviz/internal/cli"
)

func main() {
	cli.Execute()
}
