package scanner

// outputStale reports whether a generated artifact needs rewriting: it is
// missing, or its source has a newer mtime. The check is conservative in
// both directions a filesystem can lie: equal mtimes count as fresh, and an
// unreadable stat counts as stale.
func (p *Pass) outputStale(source, output string) bool {
	outInfo := p.FS.Stat(output)
	if outInfo == nil {
		return true
	}
	srcInfo := p.FS.Stat(source)
	if srcInfo == nil {
		return true
	}
	return srcInfo.ModTime().After(outInfo.ModTime())
}
