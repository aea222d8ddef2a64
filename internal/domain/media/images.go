package media

// Images is an ordered image list. Index 0 is the default (cover) image.
type Images []Image

func (l Images) Cover() (Image, bool) {
	if len(l) == 0 {
		return Image{}, false
	}
	return l[0], true
}

func (l Images) Index(filename string) int {
	for i, img := range l {
		if img.Filename == filename {
			return i
		}
	}
	return -1
}

func (l Images) Filenames() []string {
	out := make([]string, 0, len(l))
	for _, img := range l {
		out = append(out, img.Filename)
	}
	return out
}

// MoveToFront returns a copy of the list with the named images first, in the
// order they were named, followed by the remaining images in their original
// order. Unknown or repeated names are ignored.
func (l Images) MoveToFront(filenames ...string) Images {
	moved := make(map[int]bool, len(filenames))
	out := make(Images, 0, len(l))
	for _, name := range filenames {
		i := l.Index(name)
		if i < 0 || moved[i] {
			continue
		}
		moved[i] = true
		out = append(out, l[i])
	}
	for i, img := range l {
		if !moved[i] {
			out = append(out, img)
		}
	}
	return out
}

// Without returns a copy of the list minus every image whose filename is
// named, and the images that were dropped.
func (l Images) Without(filenames ...string) (kept Images, removed Images) {
	drop := make(map[string]bool, len(filenames))
	for _, name := range filenames {
		drop[name] = true
	}
	kept = make(Images, 0, len(l))
	for _, img := range l {
		if drop[img.Filename] {
			removed = append(removed, img)
			continue
		}
		kept = append(kept, img)
	}
	return kept, removed
}
