package main

import "fmt"

func printResult(d *demoArgs) {
	fmt.Printf("domain:    %s\n", d.SelectedDomain())
	fmt.Printf("name:      %s\n", d.name.Get())
	fmt.Printf("tries:     %d\n", d.tries.Get())
	fmt.Printf("verbose:   %t\n", d.verbose.Get())
	fmt.Printf("mode:      %s\n", d.mode.Get())
	fmt.Printf("pred-need: %s\n", d.predNeed.Get())
	fmt.Printf("e1/e2:     %t/%t\n", d.e1.Get(), d.e2.Get())
	fmt.Printf("file:      %s\n", d.file.Get())
	fmt.Printf("extras:    %v\n", d.extras.Get())
}
