package camera

// Offline utilities for post-processing recorded camera paths: dropping
// redundant keyframes, re-spacing them uniformly, and smoothing position
// jitter. All of them are pure functions over their keyframe argument.

// Simplify drops keyframes whose position lies within tolerance of the
// chord between the surrounding kept keyframes (Ramer-Douglas-Peucker).
// The first and last keyframe are always preserved.
func Simplify(keyframes []Keyframe, tolerance float64) []Keyframe {
	if len(keyframes) <= 2 {
		out := make([]Keyframe, len(keyframes))
		copy(out, keyframes)
		return out
	}

	keep := make([]bool, len(keyframes))
	keep[0] = true
	keep[len(keyframes)-1] = true
	rdpMark(keyframes, 0, len(keyframes)-1, tolerance, keep)

	out := make([]Keyframe, 0, len(keyframes))
	for i, kf := range keyframes {
		if keep[i] {
			out = append(out, kf)
		}
	}
	return out
}

// rdpMark recursively marks the keyframes that deviate from the chord
// between lo and hi by more than tolerance.
func rdpMark(keyframes []Keyframe, lo, hi int, tolerance float64, keep []bool) {
	if hi-lo < 2 {
		return
	}

	maxDist := 0.0
	maxIdx := -1
	for i := lo + 1; i < hi; i++ {
		d := chordDistance(keyframes[i], keyframes[lo], keyframes[hi])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxIdx < 0 || maxDist <= tolerance {
		return
	}

	keep[maxIdx] = true
	rdpMark(keyframes, lo, maxIdx, tolerance, keep)
	rdpMark(keyframes, maxIdx, hi, tolerance, keep)
}

// chordDistance returns the perpendicular distance from kf's position to
// the segment between a and b. A degenerate (zero-length) chord falls back
// to plain point-to-point distance.
func chordDistance(kf, a, b Keyframe) float64 {
	chord := b.Position.Sub(a.Position)
	chordLen := chord.Length()
	if chordLen < 1e-12 {
		return kf.Position.Distance(a.Position)
	}
	offset := kf.Position.Sub(a.Position)
	return offset.Cross(chord).Length() / chordLen
}

// Resample walks from the first to the last keyframe's frame number in
// fixed interval steps, re-evaluating the interpolated path at each step to
// produce a uniformly spaced sequence. Useful before simplification or
// export. The last frame is always included.
func Resample(keyframes []Keyframe, interval int, defaultFOV, tension float64) []Keyframe {
	if len(keyframes) < 2 || interval < 1 {
		out := make([]Keyframe, len(keyframes))
		copy(out, keyframes)
		return out
	}

	first := keyframes[0].Frame
	last := keyframes[len(keyframes)-1].Frame

	var out []Keyframe
	for frame := first; frame < last; frame += interval {
		state := Interpolate(keyframes, float64(frame), defaultFOV, tension)
		out = append(out, Keyframe{
			Frame:    frame,
			Position: state.Position,
			Rotation: state.Rotation,
			FOV:      state.FOV,
		})
	}

	end := Interpolate(keyframes, float64(last), defaultFOV, tension)
	out = append(out, Keyframe{
		Frame:    last,
		Position: end.Position,
		Rotation: end.Rotation,
		FOV:      end.FOV,
	})
	return out
}

// Smooth applies a symmetric moving average to keyframe positions, with the
// window shrinking near the sequence boundaries. Rotation passes through
// unchanged: averaging quaternions component-wise is not meaningful.
func Smooth(keyframes []Keyframe, windowSize int) []Keyframe {
	out := make([]Keyframe, len(keyframes))
	copy(out, keyframes)
	if len(keyframes) < 3 || windowSize < 1 {
		return out
	}

	for i := range keyframes {
		lo := maxInt(i-windowSize, 0)
		hi := minInt(i+windowSize, len(keyframes)-1)

		var sumX, sumY, sumZ float64
		for j := lo; j <= hi; j++ {
			sumX += keyframes[j].Position.X
			sumY += keyframes[j].Position.Y
			sumZ += keyframes[j].Position.Z
		}
		n := float64(hi - lo + 1)
		out[i].Position.X = sumX / n
		out[i].Position.Y = sumY / n
		out[i].Position.Z = sumZ / n
	}
	return out
}
