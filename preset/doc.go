// Package preset saves and restores session settings as a flat document.
//
// The document holds one key per tunable setting and no font data; the
// font is referenced by its registry name. JSON and YAML share the same
// keys:
//
//	{
//	  "asciiFont": "GoMono",
//	  "asciiCharacterSet": "0123456789",
//	  "asciiFontSize": 8,
//	  "asciiInvertCharacters": false,
//	  "asciiCharacterColorMode": 0,
//	  "asciiBackgroundColorMode": 1,
//	  "asciiCharacterColor": "#ffffff",
//	  "asciiBackgroundColor": "#000000",
//	  "gridCellCountX": 100,
//	  "gridCellCountY": 37,
//	  "asciiShaderActive": true,
//	  "desiredFrameRate": 60,
//	  "recordingType": "webm"
//	}
package preset
