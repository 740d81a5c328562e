// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// decode decodes b into v. Files ending with .yaml or .yml are YAML; all others are JSON.
// YAML is converted to JSON first, thus the json tags define the keys of both formats
func decode(fn string, b []byte, v interface{}) (err error) {
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		var tree interface{}
		err = yaml.Unmarshal(b, &tree)
		if err != nil {
			return chk.Err("cannot parse YAML file %q:\n%v", fn, err)
		}
		b, err = json.Marshal(tree)
		if err != nil {
			return chk.Err("cannot convert YAML file %q:\n%v", fn, err)
		}
	}
	err = json.Unmarshal(b, v)
	if err != nil {
		return chk.Err("cannot unmarshal file %q:\n%v", fn, err)
	}
	return
}
