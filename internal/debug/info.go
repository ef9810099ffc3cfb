package debug

import (
	"fmt"
	"strings"

	"github.com/intuitionamiga/spectrum48/internal/emulator"
)

// FormatInfo renders a system-info snapshot for the F1 debug binding,
// in the register-dump style of a machine monitor.
func FormatInfo(info emulator.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PC=%04X SP=%04X\n", info.PC, info.SP)
	fmt.Fprintf(&b, "AF=%04X BC=%04X DE=%04X HL=%04X\n", info.AF, info.BC, info.DE, info.HL)
	fmt.Fprintf(&b, "IX=%04X IY=%04X\n", info.IX, info.IY)
	fmt.Fprintf(&b, "IM=%d IFF1=%t IFF2=%t HALT=%t\n", info.IM, info.IFF1, info.IFF2, info.Halted)
	fmt.Fprintf(&b, "Border=%d Frame=%d\n", info.Border, info.FrameCount)
	return b.String()
}
