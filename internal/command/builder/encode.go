package builder

import (
	"slices"

	"grabarr/internal/domain/consts"
)

// encodeEntry is one backend's transcoder argument set, in a standard
// and a mobile-compatibility variant. Mobile variants constrain bitrate,
// pin yuv420p, and cap the preset so output plays on hardware decoders.
type encodeEntry struct {
	standard []string
	mobile   []string
}

var encodeTable = map[consts.Backend]encodeEntry{
	consts.BackendCUDA: {
		standard: []string{"-c:v", "h264_nvenc", "-cq", "19", "-preset", "p5"},
		mobile:   []string{"-c:v", "h264_nvenc", "-b:v", "8M", "-maxrate", "10M", "-pix_fmt", "yuv420p", "-preset", "p4"},
	},
	consts.BackendNVENC: {
		standard: []string{"-c:v", "h264_nvenc", "-cq", "19", "-preset", "p5"},
		mobile:   []string{"-c:v", "h264_nvenc", "-b:v", "8M", "-maxrate", "10M", "-pix_fmt", "yuv420p", "-preset", "p4"},
	},
	consts.BackendAMF: {
		standard: []string{"-c:v", "h264_amf", "-quality", "quality"},
		mobile:   []string{"-c:v", "h264_amf", "-b:v", "8M", "-maxrate", "10M", "-pix_fmt", "yuv420p", "-quality", "balanced"},
	},
	consts.BackendQSV: {
		standard: []string{"-c:v", "h264_qsv", "-global_quality", "19", "-preset", "slow"},
		mobile:   []string{"-c:v", "h264_qsv", "-b:v", "8M", "-maxrate", "10M", "-pix_fmt", "yuv420p", "-preset", "medium"},
	},
	// d3d11va and dxva2 accelerate decode only; encode stays software.
	consts.BackendD3D11VA: {
		standard: []string{"-hwaccel", "d3d11va", "-c:v", "libx264", "-crf", "19", "-preset", "slow"},
		mobile:   []string{"-hwaccel", "d3d11va", "-c:v", "libx264", "-crf", "23", "-preset", "fast", "-pix_fmt", "yuv420p"},
	},
	consts.BackendDXVA2: {
		standard: []string{"-hwaccel", "dxva2", "-c:v", "libx264", "-crf", "19", "-preset", "slow"},
		mobile:   []string{"-hwaccel", "dxva2", "-c:v", "libx264", "-crf", "23", "-preset", "fast", "-pix_fmt", "yuv420p"},
	},
	consts.BackendVAAPI: {
		standard: []string{"-vaapi_device", "/dev/dri/renderD128", "-vf", "format=nv12,hwupload", "-c:v", "h264_vaapi", "-qp", "19"},
		mobile:   []string{"-vaapi_device", "/dev/dri/renderD128", "-vf", "format=nv12,hwupload", "-c:v", "h264_vaapi", "-b:v", "8M", "-maxrate", "10M"},
	},
	consts.BackendNone: {
		standard: []string{"-c:v", "libx264", "-crf", "19", "-preset", "slow"},
		mobile:   []string{"-c:v", "libx264", "-crf", "23", "-preset", "fast", "-pix_fmt", "yuv420p"},
	},
}

// EncodeArgs returns the transcoder arguments for a backend and media
// kind. Audio and subtitle kinds take no encode arguments; unknown
// backends fall through to the software entry. The result is a fresh
// slice, safe for the caller to trim on retry.
func EncodeArgs(backend consts.Backend, kind consts.MediaKind, mobile bool) []string {
	if kind != consts.KindCombined && kind != consts.KindVideoOnly {
		return nil
	}

	e, ok := encodeTable[backend]
	if !ok {
		e = encodeTable[consts.BackendNone]
	}

	args := e.standard
	if mobile {
		args = e.mobile
	}
	args = slices.Clone(args)

	// Merged files re-encode audio on the mobile path so the container
	// never carries codecs phone decoders reject.
	if kind == consts.KindCombined {
		if mobile {
			args = append(args, "-c:a", "aac", "-b:a", "192k")
		} else {
			args = append(args, "-c:a", "copy")
		}
	}
	return args
}
