package webchat

import _ "embed"

//go:embed widget.js
var defaultWidgetJS []byte
