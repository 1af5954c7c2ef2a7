// Package rive adapts the immediate-mode draw protocol of a vector
// animation engine to a retained scene graph.
//
// # Overview
//
// An animation engine draws every frame by building RenderPath geometry,
// configuring RenderPaint style, and issuing Save, Transform, ClipPath,
// DrawPath and Restore calls on a Renderer. SceneRenderer answers those
// calls by pushing independent scene.Shape and scene.Group paints into a
// scene.Scene, which a rasterizer or exporter consumes afterwards.
//
// # Quick Start
//
//	s := scene.NewScene()
//	f := rive.NewSceneFactory()
//	r := rive.NewSceneRenderer(s)
//
//	path := f.MakeRenderPath()
//	path.MoveTo(0, 0)
//	path.LineTo(10, 0)
//	path.LineTo(10, 10)
//	path.Close()
//
//	paint := f.MakeRenderPaint()
//	paint.Color(0xFFFF0000)
//
//	r.Save()
//	r.Transform(rive.TranslateMat2D(10, 0))
//	r.DrawPath(path, paint)
//	r.Restore()
//
// # Transforms
//
// Mat2D uses the engine's [xx, xy, yx, yy, tx, ty] layout. Transform
// right-multiplies, so a transform issued later acts in the local space of
// the geometry drawn after it.
//
// # Clips
//
// ClipPath fills two slots by call order: the first clip becomes the
// persistent clip, which wraps every following draw in a clipped group;
// later clips become the next-draw clip, consumed by one DrawPath.
// SetPersistentClip and SetNextDrawClip name the slot explicitly.
//
// # Errors
//
// Contract violations such as Restore without Save are ignored, logged,
// and reported by Err. WithStrict, or building with the riveassert tag,
// turns them into panics.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package rive
