package adapters

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galogen/internal/types"
)

// typeXML, commandXML and the proto/param helpers read mixed content, where
// text and child elements interleave to form C declarations.
type typeXML struct {
	info types.TypeInfo
}

func (t *typeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	line, _ := d.InputPos()
	t.info.Line = line
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "name":
			t.info.Name = attr.Value
		case "requires":
			t.info.Requires = attr.Value
		case "api":
			t.info.API = types.ParseAPITag(attr.Value)
		}
	}
	var decl strings.Builder
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := token.(type) {
		case xml.CharData:
			decl.Write(tok)
		case xml.StartElement:
			switch tok.Name.Local {
			case "name":
				var name string
				if err := d.DecodeElement(&name, &tok); err != nil {
					return err
				}
				t.info.Name = name
				decl.WriteString(" " + name)
			case "apientry":
				if err := d.Skip(); err != nil {
					return err
				}
				decl.WriteString(" GL_APIENTRY ")
			default:
				return unexpectedElement(d, tok.Name.Local, "type definition")
			}
		case xml.EndElement:
			t.info.Declaration = decl.String()
			return nil
		}
	}
}

type commandXML struct {
	info types.CommandInfo
}

func (c *commandXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	line, _ := d.InputPos()
	c.info.Line = line
	for _, attr := range start.Attr {
		if attr.Name.Local == "api" {
			c.info.API = types.ParseAPITag(attr.Value)
		}
	}
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "proto":
				if err := c.decodeProto(d); err != nil {
					return err
				}
			case "param":
				param, err := decodeParam(d, tok)
				if err != nil {
					return err
				}
				c.info.Params = append(c.info.Params, param)
			case "alias":
				c.info.Alias = attrValue(tok, "name")
				if err := d.Skip(); err != nil {
					return err
				}
			case "vecequiv":
				c.info.VecEquiv = attrValue(tok, "name")
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (c *commandXML) decodeProto(d *xml.Decoder) error {
	var returnType, prototype strings.Builder
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := token.(type) {
		case xml.CharData:
			returnType.WriteString(" " + string(tok))
			prototype.Write(tok)
		case xml.StartElement:
			var text string
			switch tok.Name.Local {
			case "ptype":
				if err := d.DecodeElement(&text, &tok); err != nil {
					return err
				}
				returnType.WriteString(" " + text)
				prototype.WriteString(text)
				c.info.ReferencedType = text
			case "name":
				if err := d.DecodeElement(&text, &tok); err != nil {
					return err
				}
				prototype.WriteString(text)
				c.info.Name = text
			default:
				return unexpectedElement(d, tok.Name.Local, "command prototype")
			}
		case xml.EndElement:
			c.info.ReturnCType = strings.Join(strings.Fields(returnType.String()), " ")
			c.info.Prototype = prototype.String()
			return nil
		}
	}
}

func decodeParam(d *xml.Decoder, start xml.StartElement) (types.ParamInfo, error) {
	param := types.ParamInfo{
		Group: attrValue(start, "group"),
		Len:   attrValue(start, "len"),
	}
	var ctype strings.Builder
	for {
		token, err := d.Token()
		if err != nil {
			return param, err
		}
		switch tok := token.(type) {
		case xml.CharData:
			ctype.Write(tok)
		case xml.StartElement:
			var text string
			switch tok.Name.Local {
			case "ptype":
				if err := d.DecodeElement(&text, &tok); err != nil {
					return param, err
				}
				param.ReferencedType = text
				ctype.WriteString(text)
			case "name":
				if err := d.DecodeElement(&text, &tok); err != nil {
					return param, err
				}
				param.Name = text
			default:
				return param, unexpectedElement(d, tok.Name.Local, "command parameter")
			}
		case xml.EndElement:
			param.CType = ctype.String()
			return param, nil
		}
	}
}

func attrValue(start xml.StartElement, name string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func unexpectedElement(d *xml.Decoder, tag string, where string) error {
	line, _ := d.InputPos()
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unexpected element %q in %s on line %d", tag, where, line))
}
