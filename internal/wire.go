// Package internal holds the wire shapes of the discovery endpoints:
// webfinger, host-meta and nodeinfo.
package internal

import "encoding/xml"

type JSONWebfinger struct {
	Subject string              `json:"subject"`
	Aliases []string            `json:"aliases,omitempty"`
	Links   []JSONWebfingerLink `json:"links"`
}

type JSONWebfingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

type XMLHostMeta struct {
	XMLName xml.Name
	Xmlns   string            `xml:"xmlns,attr"`
	Links   []XMLHostMetaLink `xml:"Link"`
}

type XMLHostMetaLink struct {
	Rel      string `xml:"rel,attr"`
	Type     string `xml:"type,attr"`
	Template string `xml:"template,attr"`
}

type JSONNodeInfo struct {
	Links []JSONNodeInfoLink `json:"links"`
}

type JSONNodeInfoLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type JSONNodeInfo2Dot1 struct {
	Version           string                    `json:"version"`
	Software          JSONNodeInfo2Dot1Software `json:"software"`
	Protocols         []string                  `json:"protocols"`
	Services          JSONNodeInfo2Dot1Services `json:"services"`
	OpenRegistrations bool                      `json:"openRegistrations"`
	Usage             JSONNodeInfo2Dot1Usage    `json:"usage"`
	Metadata          JSONNodeInfo2Dot1Metadata `json:"metadata"`
}

type JSONNodeInfo2Dot1Software struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type JSONNodeInfo2Dot1Services struct {
	Inbound  []string `json:"inbound"`
	Outbound []string `json:"outbound"`
}

type JSONNodeInfo2Dot1Usage struct {
	Users JSONNodeInfo2Dot1Users `json:"users"`
}

type JSONNodeInfo2Dot1Users struct {
	Total int `json:"total"`
}

type JSONNodeInfo2Dot1Metadata struct{}
