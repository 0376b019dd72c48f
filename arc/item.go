// Package arc models the captured web-archive record the codec converts:
// one FileItem per archived resource, carrying the resource payload and the
// capture metadata the surrounding ingestion layer recorded.
package arc

// HeaderItem is one protocol header captured with the resource.
type HeaderItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FileItem is the wire record for one captured resource. The ingestion
// layer constructs and owns items; the codec only reads them during decode
// and builds fresh ones during encode.
//
// HeaderItems and Content may be nil; readers treat both as empty.
type FileItem struct {
	URI          string       `json:"uri"`
	HostIP       string       `json:"hostIP"`
	Timestamp    int64        `json:"timestamp"`
	MimeType     string       `json:"mimeType"`
	RecordLength int32        `json:"recordLength"`
	HeaderItems  []HeaderItem `json:"headerItems"`
	Content      *Buffer      `json:"content"`
	ArcFileName  string       `json:"arcFileName"`
	ArcFilePos   int32        `json:"arcFilePos"`
	Flags        int32        `json:"flags"`
	ArcFileSize  int32        `json:"arcFileSize"`
}
