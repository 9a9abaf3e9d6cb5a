// Package viewer hosts a [convscan.Engine] in an [Ebitengine] window.
//
// The engine owns every piece of scan state; the viewer only turns key
// presses, injected actions and test script steps into engine calls, ticks
// the engine once per Update, and blits the rasters each Draw:
//
//	e, err := convscan.New(nil, convscan.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := viewer.Run(e, viewer.RunConfig{ShowHUD: true}); err != nil {
//		log.Fatal(err)
//	}
//
// The input is drawn on the left at RunConfig.Scale, the output stretched
// to the same size on the right. The kernel window glides over the input
// with a short tween (via [gween]) and the next output cell is outlined.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package viewer
