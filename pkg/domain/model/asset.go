package model

// AssetStat is the metadata an asset source reports for a path
type AssetStat struct {
	Size    int64
	Regular bool // false for directories, devices, folder placeholders, etc.
}

// AssetFile is a path that passed validation
type AssetFile struct {
	Path string
	Size int64
}

// TotalSize returns the sum of all file sizes
func TotalSize(files []*AssetFile) int64 {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total
}
