package schema

// MediaAssetTable represents the 'media.asset' table
type MediaAssetTable struct {
	Table       string
	ID          string
	Filename    string
	ObjectKey   string
	URL         string
	ContentType string
	SizeBytes   string
	UploadedBy  string
	CreatedAt   string
}

// MediaAsset is the schema definition for media.asset
var MediaAsset = MediaAssetTable{
	Table:       "media.asset",
	ID:          "id",
	Filename:    "filename",
	ObjectKey:   "objectkey",
	URL:         "url",
	ContentType: "contenttype",
	SizeBytes:   "sizebytes",
	UploadedBy:  "uploadedby",
	CreatedAt:   "createdat",
}
