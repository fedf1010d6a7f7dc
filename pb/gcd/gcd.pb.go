// Message types for pb/gcd.proto.

package gcd

import (
	"github.com/golang/protobuf/proto"
)

// This is a compile-time assertion to ensure that this file
// is compatible with the proto package it is being compiled against.
const _ = proto.ProtoPackageIsVersion3

type Algorithm int32

const (
	Algorithm_EUCLIDEAN Algorithm = 0
	Algorithm_BINARY    Algorithm = 1
)

var Algorithm_name = map[int32]string{
	0: "EUCLIDEAN",
	1: "BINARY",
}

var Algorithm_value = map[string]int32{
	"EUCLIDEAN": 0,
	"BINARY":    1,
}

func (x Algorithm) String() string {
	return proto.EnumName(Algorithm_name, int32(x))
}

type Result struct {
	Algorithm            Algorithm `protobuf:"varint,1,opt,name=algorithm,proto3,enum=gcd.Algorithm" json:"algorithm,omitempty"`
	Operands             []int32   `protobuf:"zigzag32,2,rep,packed,name=operands,proto3" json:"operands,omitempty"`
	Gcd                  int32     `protobuf:"varint,3,opt,name=gcd,proto3" json:"gcd,omitempty"`
	Timed                bool      `protobuf:"varint,4,opt,name=timed,proto3" json:"timed,omitempty"`
	ElapsedMs            int64     `protobuf:"varint,5,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{}  `json:"-"`
	XXX_unrecognized     []byte    `json:"-"`
	XXX_sizecache        int32     `json:"-"`
}

func (m *Result) Reset()         { *m = Result{} }
func (m *Result) String() string { return proto.CompactTextString(m) }
func (*Result) ProtoMessage()    {}

func (m *Result) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Result.Unmarshal(m, b)
}
func (m *Result) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Result.Marshal(b, m, deterministic)
}
func (m *Result) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Result.Merge(m, src)
}
func (m *Result) XXX_Size() int {
	return xxx_messageInfo_Result.Size(m)
}
func (m *Result) XXX_DiscardUnknown() {
	xxx_messageInfo_Result.DiscardUnknown(m)
}

var xxx_messageInfo_Result proto.InternalMessageInfo

func (m *Result) GetAlgorithm() Algorithm {
	if m != nil {
		return m.Algorithm
	}
	return Algorithm_EUCLIDEAN
}

func (m *Result) GetOperands() []int32 {
	if m != nil {
		return m.Operands
	}
	return nil
}

func (m *Result) GetGcd() int32 {
	if m != nil {
		return m.Gcd
	}
	return 0
}

func (m *Result) GetTimed() bool {
	if m != nil {
		return m.Timed
	}
	return false
}

func (m *Result) GetElapsedMs() int64 {
	if m != nil {
		return m.ElapsedMs
	}
	return 0
}

func init() {
	proto.RegisterEnum("gcd.Algorithm", Algorithm_name, Algorithm_value)
	proto.RegisterType((*Result)(nil), "gcd.Result")
}
