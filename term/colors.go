package term

import (
	"fmt"
	"io"
	"os"
)

type colorValue int

// Color codes
const (
	CRed         colorValue = 31
	CGreen       colorValue = 32
	CYellow      colorValue = 33
	CLightRed    colorValue = 91
	CLightGreen  colorValue = 92
	CLightYellow colorValue = 93
)

// Output is where messages go. Stdout is reserved for inventory
// documents so it defaults to stderr
var Output io.Writer = os.Stderr

// Colored wraps message into esc sequences to make it colored
func Colored(message string, c colorValue, bold bool) string {
	bstr := ""
	if bold {
		bstr = ";1"
	}
	return fmt.Sprintf("\033[%d%sm%s\033[0m", c, bstr, message)
}

// Red returns message colored with light red color
func Red(message string) string {
	return Colored(message, CLightRed, false)
}

// Green returns message colored with light green color
func Green(message string) string {
	return Colored(message, CLightGreen, false)
}

// Yellow returns message colored with light yellow color
func Yellow(message string) string {
	return Colored(message, CLightYellow, false)
}

// Errorf prints a red-colored formatted error message
func Errorf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprint(Output, Red(message))
}

// Successf prints a green-colored formatted message
func Successf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprint(Output, Green(message))
}

// Warnf prints a yellow-colored formatted warning message
func Warnf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprint(Output, Yellow(message))
}
