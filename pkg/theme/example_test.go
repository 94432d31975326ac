package theme_test

import (
	"fmt"

	"github.com/matzehuels/figwind/pkg/theme"
)

func ExampleResolveSource() {
	src := []byte(`
disable = ["cursor"]

[theme.extend.zIndex]
sidebar = 41
`)
	th, err := theme.ResolveSource(src, theme.FormatTOML)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	v, _ := th.Scale("zIndex").Get("sidebar")
	fmt.Println(v)
	fmt.Println(th.Enabled("cursor"))
	fmt.Println(th.Breakpoints())
	// Output:
	// 41
	// false
	// [sm md lg xl 2xl]
}
