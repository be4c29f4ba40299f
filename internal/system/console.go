package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// EnterGraphics switches the console to graphics mode and hides the cursor.
// Both steps are best-effort and logged; the returned func undoes them.
func EnterGraphics(l Logger) (restore func()) {
	logStep(l, "KD_GRAPHICS set", "KD_GRAPHICS failed", SetGraphicsMode())
	logStep(l, "cursor hidden", "hide cursor failed", HideCursor())
	return func() {
		logStep(l, "cursor shown", "show cursor failed", ShowCursor())
		logStep(l, "KD_TEXT set", "KD_TEXT failed", RestoreTextMode())
	}
}

func logStep(l Logger, ok, failed string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
		return
	}
	l.Infof("tty", "%s", ok)
}
