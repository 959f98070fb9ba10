package render

// Draw executes f against dst. A clipped frame is drawn once per clip
// rectangle into the matching sub-image of dst.
func Draw(r Renderer, dst Image, f *Frame) {
	if f.Len() == 0 {
		return
	}
	if !f.Clipped() {
		drawCommands(r, dst, f.Commands)
		return
	}
	bounds := dst.Bounds()
	for _, rect := range f.Clip {
		rect = rect.Intersect(bounds)
		if rect.Empty() {
			continue
		}
		drawCommands(r, dst.SubImage(rect), f.Commands)
	}
}

// DrawAll sorts frames and draws them in order. nil frames are skipped.
func DrawAll(r Renderer, dst Image, frames ...*Frame) {
	live := make([]*Frame, 0, len(frames))
	for _, f := range frames {
		if f != nil {
			live = append(live, f)
		}
	}
	SortFrames(live)
	for _, f := range live {
		Draw(r, dst, f)
	}
}

func drawCommands(r Renderer, dst Image, commands []Command) {
	for _, c := range commands {
		switch c.Kind {
		case KindPolygon:
			if len(c.Points) < 3 {
				continue
			}
			if c.Fill != nil {
				r.FillPolygon(dst, c.Points, c.Fill)
			}
			if c.Stroke != nil {
				r.StrokePolygon(dst, c.Points, c.StrokeWidth, c.Stroke)
			}
		case KindLine:
			if len(c.Points) != 2 || c.Stroke == nil {
				continue
			}
			r.StrokeLine(dst, c.Points[0], c.Points[1], c.StrokeWidth, c.Stroke)
		case KindRect:
			if c.Rect.Empty() {
				continue
			}
			if c.Fill != nil {
				r.FillRect(dst, c.Rect, c.Fill)
			}
			if c.Stroke != nil {
				r.StrokeRect(dst, c.Rect, c.StrokeWidth, c.Stroke)
			}
		}
	}
}
