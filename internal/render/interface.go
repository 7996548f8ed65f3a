package render

// FileRenderer renders a built scene to a file. filename should be the
// desired file name without an extension.
type FileRenderer interface {
	RenderToFile(scene *Scene, filename string) error
}
