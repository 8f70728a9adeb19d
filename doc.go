// Package emblem is an interactive animated-logo splash runtime for
// [Ebitengine].
//
// Emblem keeps a small retained tree of elements — three draggable logo
// groups, two gradient connector trails, and a radial action-button ring —
// and drives them through a scripted preload sequence with a frame-driven
// tween engine. The whole stage can be snapshotted to SVG at any time.
//
// # Quick start
//
// Build a [Splash] over a host and hand it to [Run]:
//
//	host := emblem.NewWindowHost(800, 600, false)
//	splash := emblem.NewSplash(emblem.DefaultConfig(), host)
//	splash.RunPreload()
//	emblem.Run(splash, emblem.RunConfig{Title: "emblem", Width: 800, Height: 600})
//
// For headless or test use, drive the scheduler yourself:
//
//	splash := emblem.NewSplash(emblem.DefaultConfig(), emblem.FixedHost{W: 800, H: 600})
//	done := splash.RunPreload()
//	for !done.Done() {
//		splash.Step(1.0 / 60)
//	}
//	splash.Stage().WriteSVG(os.Stdout)
//
// # Architecture
//
// Everything runs on one goroutine against one [Scheduler]; suspension is
// always a frame wait, a timed delay, or the joint completion of several
// tweens, expressed as [Future] values. Tweens interpolate via [gween];
// the ring's live-resize smoothing uses a [harmonica] spring. There are no
// package-level singletons: [NewSplash] is the composition root that
// constructs and owns every controller.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package emblem
