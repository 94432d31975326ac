package responsive_test

import (
	"fmt"

	"github.com/matzehuels/figwind/pkg/index"
	"github.com/matzehuels/figwind/pkg/responsive"
	"github.com/matzehuels/figwind/pkg/theme"
)

func ExampleDiff() {
	fwd, err := index.BuildForward(theme.Default())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	inputs := [][]string{
		{"flex", "text-sm", "p-2"},
		{"flex", "text-lg", "p-2"},
		{"flex", "text-lg", "p-4"},
	}
	fmt.Println(responsive.Diff(inputs, fwd, []string{"md", "lg"}))
	// Output: text-sm md:text-lg p-2 lg:p-4
}
