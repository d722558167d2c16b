// Package motion is a declarative animation engine for 2D elements.
//
// Describe the states an element can be in and motion works out how to get
// there: every time the element's props or pointer state change, it picks the
// active target, diffs each property against where the element currently is,
// and starts one interpolation per property on a [Driver].
//
// # Quick start
//
//	ticker := motion.NewTicker()
//	el, err := motion.NewElement(motion.Props{
//		Initial: motion.Literal(motion.To("opacity", motion.Num(0)), motion.To("scale", motion.Num(0.5))),
//		Animate: motion.Literal(motion.To("opacity", motion.Num(1)), motion.To("scale", motion.Num(1))),
//		WhileHover: motion.Literal(motion.To("scale", motion.Num(1.2))),
//		Transition: motion.Transition{Duration: 0.5, Ease: "easeOut"},
//	}, ticker)
//	if err != nil {
//		log.Fatal(err)
//	}
//	el.Style().Bind(func(s *motion.StyleState) {
//		fmt.Println(motion.Render(s))
//	})
//	_ = el.Mount(host)
//
//	// each frame:
//	ticker.Update(1.0 / 60)
//
// # Targets and variants
//
// A [Target] is either a variant name, resolved through the [Variants]
// table, or a literal mapping built with [Literal]. Literal values may be
// keyframe sequences ([Keyframes]); those are handed to the driver as a
// whole.
//
// While pressed, whileTap wins; while hovered, whileHover; otherwise
// animate. Each pass cancels whatever the previous pass started, then
// drives the keys of the winning target. When an explicit initial is set,
// every pass animates from it; otherwise from the current style.
//
// # Style state
//
// Each element owns an insertion-ordered [StyleState]. [Render] turns it
// into concrete declarations: rotate, scale, scaleX, scaleY and x become one
// transform in key order, everything else is copied through.
//
// # Drivers
//
// [Ticker] is the built-in driver: tweens and keyframes via [gween], springs
// via [harmonica], colors mixed with [go-colorful]. The host advances it once
// per frame. [Stage] does this inside an [Ebitengine] window and [Player]
// does it headless.
//
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
// [Ebitengine]: https://ebitengine.org
package motion
