package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/swaggyp/internal/cli"
	"k8s.io/klog/v2"
)

func main() {
	err := cli.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
